package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"push": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"dispatch": map[string]any{
			"ratePerSecond":  0,
			"asyncDismiss":   false,
			"dismissTimeout": "30s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PUSH_PROJECTID", want: "push.projectId"},
		{envKey: "PUSH_CREDENTIALSPATH", want: "push.credentialsPath"},
		{envKey: "DISPATCH_RATEPERSECOND", want: "dispatch.ratePerSecond"},
		{envKey: "DISPATCH_ASYNCDISMISS", want: "dispatch.asyncDismiss"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsDispatchAndPush(t *testing.T) {
	cfg := &Config{Push: &PushConfig{Provider: "log"}}
	cfg.Dispatch.Concurrency = -1

	applyDefaults(cfg)

	if cfg.Database.Driver != "postgres" {
		t.Fatalf("Database.Driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Dispatch.Concurrency != defaultDispatchConcurrency {
		t.Fatalf("Dispatch.Concurrency = %d, want %d", cfg.Dispatch.Concurrency, defaultDispatchConcurrency)
	}
	if cfg.Dispatch.SendTimeout != 10*time.Second {
		t.Fatalf("Dispatch.SendTimeout = %s, want 10s", cfg.Dispatch.SendTimeout)
	}
	if cfg.Dispatch.DismissTimeout != 30*time.Second {
		t.Fatalf("Dispatch.DismissTimeout = %s, want 30s", cfg.Dispatch.DismissTimeout)
	}
	if cfg.Push.CallTitle != defaultCallTitle {
		t.Fatalf("Push.CallTitle = %q, want %q", cfg.Push.CallTitle, defaultCallTitle)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("HTTP.MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Dispatch.Concurrency = 4
	cfg.Dispatch.SendTimeout = 2 * time.Second

	applyDefaults(cfg)

	if cfg.Database.Driver != "sqlite" || cfg.Dispatch.Concurrency != 4 || cfg.Dispatch.SendTimeout != 2*time.Second {
		t.Fatalf("explicit values overwritten: %+v", cfg.Dispatch)
	}
	if cfg.Push != nil {
		t.Fatalf("Push should stay nil when not configured")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Database.Driver = "sqlite"
		cfg.Database.SQLitePath = "callbell.db"
		cfg.HTTP.Port = 8080

		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "port out of range", mutate: func(cfg *Config) { cfg.HTTP.Port = 70000 }},
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Database.Driver = "mysql" }},
		{name: "sqlite without path", mutate: func(cfg *Config) { cfg.Database.SQLitePath = "" }},
		{name: "postgres without section", mutate: func(cfg *Config) { cfg.Database.Driver = "postgres" }},
		{name: "auth without secret", mutate: func(cfg *Config) { cfg.Auth = &AuthConfig{Enabled: true} }},
		{name: "unknown push provider", mutate: func(cfg *Config) { cfg.Push = &PushConfig{Provider: "apns"} }},
		{name: "negative burst", mutate: func(cfg *Config) { cfg.Dispatch.Burst = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("env: {}\n"), 0o600))
	t.Chdir(dir)

	path, err := findConfigFile("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".", "config.yaml"), path)

	_, err = findConfigFile("missing.yaml", "nowhere")
	assert.Error(t, err)
}
