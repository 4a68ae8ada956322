package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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
	defaultMaxRequestBodySize = "100KB"

	defaultPlatform        = "fcm"
	defaultSettleDelay     = 500 * time.Millisecond
	defaultFreshnessWindow = 30 * 24 * time.Hour
	defaultCleanupAge      = 90 * 24 * time.Hour
	defaultRequestTimeout  = 15 * time.Second
	defaultAgentTokenTTL   = 15 * time.Minute
	defaultAgentSubject    = "registrar"
	defaultStoreDir        = "pushreg"
	defaultStoreFile       = "state.db"
)

var defaultMachineIDPaths = []string{"/etc/machine-id", "/var/lib/dbus/machine-id"}

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

	// Postgres is only required by the device hub.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for push token validation
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for device lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Registration configuration for the on-device registration coordinator
	Registration *RegistrationConfig `json:"registration" yaml:"registration"`
}

// AuthConfig defines agent token settings
type AuthConfig struct {
	AgentTokenTTL time.Duration `json:"agentTokenTTL" yaml:"agentTokenTTL"`
	AgentSubject  string        `json:"agentSubject" yaml:"agentSubject"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	ValidateTokens  bool   `json:"validateTokens" yaml:"validateTokens"`
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
}

// RegistrationConfig defines how the installation registers itself against the device hub
type RegistrationConfig struct {
	// Push platform family reported by this installation
	Platform string `json:"platform" yaml:"platform"`

	// Pause before the first status check so platform services can settle
	SettleDelay time.Duration `json:"settleDelay" yaml:"settleDelay"`

	// A record not updated within this window is treated as not registered
	FreshnessWindow time.Duration `json:"freshnessWindow" yaml:"freshnessWindow"`

	// Records registered longer ago than this are deactivated by cleanup
	CleanupAge time.Duration `json:"cleanupAge" yaml:"cleanupAge"`

	// SQLite file holding the local key-value state
	StorePath string `json:"storePath" yaml:"storePath"`

	// Base URL of the device hub API
	BackendURL string `json:"backendUrl" yaml:"backendUrl"`

	// Per-request timeout of the device hub client
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Push token handed to the installation by the platform
	PushToken string `json:"pushToken" yaml:"pushToken"`

	// Files probed for a machine identifier when deriving the fingerprint
	MachineIDPaths []string `json:"machineIdPaths" yaml:"machineIdPaths"`

	// Tags attached to the device record on registration
	Tags []string `json:"tags" yaml:"tags"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyAuthDefaults(cfg)
	if err := applyRegistrationDefaults(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyAuthDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AgentTokenTTL <= 0 {
		cfg.Auth.AgentTokenTTL = defaultAgentTokenTTL
	}
	if strings.TrimSpace(cfg.Auth.AgentSubject) == "" {
		cfg.Auth.AgentSubject = defaultAgentSubject
	}
}

// applyRegistrationDefaults fills unset registration values with the stock policy.
func applyRegistrationDefaults(cfg *Config) error {
	if cfg.Registration == nil {
		cfg.Registration = &RegistrationConfig{}
	}
	reg := cfg.Registration

	if strings.TrimSpace(reg.Platform) == "" {
		reg.Platform = defaultPlatform
	}
	if reg.SettleDelay < 0 {
		return errors.Errorf("registration.settleDelay must not be negative: %s", reg.SettleDelay)
	}
	if reg.SettleDelay == 0 {
		reg.SettleDelay = defaultSettleDelay
	}
	if reg.FreshnessWindow <= 0 {
		reg.FreshnessWindow = defaultFreshnessWindow
	}
	if reg.CleanupAge <= 0 {
		reg.CleanupAge = defaultCleanupAge
	}
	if reg.RequestTimeout <= 0 {
		reg.RequestTimeout = defaultRequestTimeout
	}
	if len(reg.MachineIDPaths) == 0 {
		reg.MachineIDPaths = defaultMachineIDPaths
	}
	if strings.TrimSpace(reg.StorePath) == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return errors.Wrap(err, "os.UserConfigDir")
		}
		reg.StorePath = filepath.Join(dir, defaultStoreDir, defaultStoreFile)
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
