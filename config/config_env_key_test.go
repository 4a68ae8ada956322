package config

import (
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
		"registration": map[string]any{
			"settleDelay":     "500ms",
			"freshnessWindow": "720h",
			"backendUrl":      "",
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
		{envKey: "REGISTRATION_SETTLEDELAY", want: "registration.settleDelay"},
		{envKey: "REGISTRATION_FRESHNESS_WINDOW", want: "registration.freshness.window"},
		{envKey: "REGISTRATION_BACKENDURL", want: "registration.backendUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyRegistrationDefaults_FillsStockPolicy(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	cfg := &Config{}

	require.NoError(t, applyRegistrationDefaults(cfg))

	reg := cfg.Registration
	require.NotNil(t, reg)
	assert.Equal(t, "fcm", reg.Platform)
	assert.Equal(t, 500*time.Millisecond, reg.SettleDelay)
	assert.Equal(t, 30*24*time.Hour, reg.FreshnessWindow)
	assert.Equal(t, 90*24*time.Hour, reg.CleanupAge)
	assert.Equal(t, 15*time.Second, reg.RequestTimeout)
	assert.Equal(t, []string{"/etc/machine-id", "/var/lib/dbus/machine-id"}, reg.MachineIDPaths)
	assert.Equal(t, filepath.Join(configHome, "pushreg", "state.db"), reg.StorePath)
}

func TestApplyRegistrationDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Registration: &RegistrationConfig{
			Platform:        "apns",
			SettleDelay:     time.Second,
			FreshnessWindow: 7 * 24 * time.Hour,
			CleanupAge:      14 * 24 * time.Hour,
			StorePath:       "/tmp/state.db",
		},
	}

	require.NoError(t, applyRegistrationDefaults(cfg))

	assert.Equal(t, "apns", cfg.Registration.Platform)
	assert.Equal(t, time.Second, cfg.Registration.SettleDelay)
	assert.Equal(t, 7*24*time.Hour, cfg.Registration.FreshnessWindow)
	assert.Equal(t, 14*24*time.Hour, cfg.Registration.CleanupAge)
	assert.Equal(t, "/tmp/state.db", cfg.Registration.StorePath)
}

func TestApplyRegistrationDefaults_RejectsNegativeSettleDelay(t *testing.T) {
	cfg := &Config{Registration: &RegistrationConfig{SettleDelay: -time.Second}}

	err := applyRegistrationDefaults(cfg)
	assert.Error(t, err)
}

func TestApplyAuthDefaults(t *testing.T) {
	cfg := &Config{}

	applyAuthDefaults(cfg)

	assert.Equal(t, 15*time.Minute, cfg.Auth.AgentTokenTTL)
	assert.Equal(t, "registrar", cfg.Auth.AgentSubject)
}
