package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"callbell/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "64KB"

	defaultDispatchConcurrency = 16
	defaultSendTimeout         = 10 * time.Second
	defaultDismissTimeout      = 30 * time.Second
	defaultCallTitle           = "Service needed"

	maxPort = 65535
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Auth guards the POST endpoints with station keys.
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Push selects and configures the push provider.
	Push *PushConfig `json:"push" yaml:"push"`

	// Dispatch tunes the fan-out engine.
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// PubSub configuration for asynchronous dismiss fan-out
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for printable table cards
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig selects the store backing calls and devices.
type DatabaseConfig struct {
	// Driver is "postgres" (default) or "sqlite"
	Driver      string `json:"driver" yaml:"driver"`
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold logs queries slower than this as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines station key verification.
type AuthConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Roles   []string `json:"roles" yaml:"roles"`
}

// PushConfig defines the push provider.
type PushConfig struct {
	// Provider is "fcm" (HTTP v1 with cached OAuth token), "firebase" (Admin SDK) or "log"
	Provider string `json:"provider" yaml:"provider"`

	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// TokenURL overrides the OAuth token endpoint (tests, emulators)
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`

	// Endpoint overrides the FCM API base URL (tests, emulators)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	CallTitle string `json:"callTitle" yaml:"callTitle"`
}

// DispatchConfig defines fan-out limits.
type DispatchConfig struct {
	Concurrency   int           `json:"concurrency" yaml:"concurrency"`
	SendTimeout   time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
	RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int           `json:"burst" yaml:"burst"`

	// AsyncDismiss publishes dismiss fan-out through Pub/Sub instead of sending inline
	AsyncDismiss   bool          `json:"asyncDismiss" yaml:"asyncDismiss"`
	DismissTimeout time.Duration `json:"dismissTimeout" yaml:"dismissTimeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the audience expected in push OIDC tokens. Empty means the
	// worker's own /push URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount, when set, must match the email claim of push tokens.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// QRCodeConfig defines table card QR generation
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv+".yaml", configPath...)
	if err != nil {
		return nil, err
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// findConfigFile looks for name in the working directory, then in each of dirs
// relative to it, so binaries and package tests share one config.yaml.
func findConfigFile(name string, dirs ...string) (string, error) {
	candidates := []string{filepath.Join(defaultPath, name)}
	if len(dirs) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir, name))
		}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = constants.DatabaseDriverPostgres
	}
	if cfg.Dispatch.Concurrency <= 0 {
		cfg.Dispatch.Concurrency = defaultDispatchConcurrency
	}
	if cfg.Dispatch.SendTimeout <= 0 {
		cfg.Dispatch.SendTimeout = defaultSendTimeout
	}
	if cfg.Dispatch.DismissTimeout <= 0 {
		cfg.Dispatch.DismissTimeout = defaultDismissTimeout
	}
	if cfg.Push != nil && cfg.Push.CallTitle == "" {
		cfg.Push.CallTitle = defaultCallTitle
	}
}

// Validate rejects settings the server cannot start with.
func (cfg *Config) Validate() error {
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > maxPort {
		return errors.Errorf("http.port out of range: %d", cfg.HTTP.Port)
	}

	switch cfg.Database.Driver {
	case constants.DatabaseDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres driver")
		}
	case constants.DatabaseDriverSQLite:
		if cfg.Database.SQLitePath == "" {
			return errors.New("database.sqlitePath is required for the sqlite driver")
		}
	default:
		return errors.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}

	if cfg.Auth != nil && cfg.Auth.Enabled && cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access is required when auth is enabled")
	}

	if cfg.Push != nil {
		switch cfg.Push.Provider {
		case constants.PushProviderFCM, constants.PushProviderFirebase, constants.PushProviderLog, "":
		default:
			return errors.Errorf("unknown push provider: %s", cfg.Push.Provider)
		}
	}

	if cfg.Dispatch.RatePerSecond < 0 || cfg.Dispatch.Burst < 0 {
		return errors.New("dispatch.ratePerSecond and dispatch.burst must not be negative")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
