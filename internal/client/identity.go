package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"callbell/internal/errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	identityFile    = "identity.json"
	deviceIDLength  = 21
	maxDisplayName  = 80
	identityDirPerm = 0o700
	identityPerm    = 0o600
)

// Identity is the stable identity of this device. The device id is generated once
// and reused for every registration and claim.
type Identity struct {
	DeviceID    string    `json:"device_id"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoadOrCreateIdentity reads the identity stored in dir, creating it on first use.
// A non-empty displayName replaces the stored one.
func LoadOrCreateIdentity(dir, displayName string) (*Identity, error) {
	displayName = strings.TrimSpace(displayName)
	if utf8.RuneCountInString(displayName) > maxDisplayName {
		return nil, errors.Errorf("display name longer than %d characters", maxDisplayName)
	}

	path := filepath.Join(dir, identityFile)

	identity, err := readIdentity(path)
	switch {
	case err == nil:
		if displayName == "" || displayName == identity.DisplayName {
			return identity, nil
		}
		identity.DisplayName = displayName
	case errors.Is(err, os.ErrNotExist):
		id, genErr := gonanoid.New(deviceIDLength)
		if genErr != nil {
			return nil, errors.Wrap(genErr, "generate device id")
		}
		identity = &Identity{
			DeviceID:    id,
			DisplayName: displayName,
			CreatedAt:   time.Now().UTC(),
		}
	default:
		return nil, err
	}

	if err := writeIdentity(dir, path, identity); err != nil {
		return nil, err
	}

	return identity, nil
}

func readIdentity(path string) (*Identity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if identity.DeviceID == "" {
		return nil, errors.Errorf("%s has no device id", path)
	}

	return &identity, nil
}

func writeIdentity(dir, path string, identity *Identity) error {
	if err := os.MkdirAll(dir, identityDirPerm); err != nil {
		return errors.Wrapf(err, "create state dir %s", dir)
	}

	raw, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, identityPerm); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}

	return errors.Wrap(os.Rename(tmp, path), "store identity")
}
