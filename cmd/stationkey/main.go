package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"callbell/config"
	"callbell/internal/infra/auth"

	"github.com/pkg/errors"
)

// Prints a station key signed with secretKey.access, for devices and table
// kiosks calling the API when auth is enabled.
func main() {
	subject := flag.String("subject", "station", "Name of the station the key is issued to")
	role := flag.String("role", "staff", "Role claim checked against auth.roles")
	ttl := flag.Duration("ttl", 0, "Key lifetime (0 never expires)")
	flag.Parse()

	key, err := issue(*subject, *role, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(key)
}

func issue(subject, role string, ttl time.Duration) (string, error) {
	if ttl < 0 {
		return "", errors.New("ttl must not be negative")
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", err
	}

	if cfg.Auth != nil && len(cfg.Auth.Roles) > 0 && !slices.Contains(cfg.Auth.Roles, role) {
		fmt.Fprintf(os.Stderr, "Warning: role %q is not in auth.roles %v\n", role, cfg.Auth.Roles)
	}

	return tokenSvc.GenerateStationKey(subject, role, ttl)
}
