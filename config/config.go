// Package config loads the service configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
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

const defaultPath = "."

// Defaults applied when the yaml file leaves a section out. The template
// counts implement the entitlement allotment: one location template for a
// guest identity, three for an authenticated one.
const (
	defaultGuestLocationTemplates  = 1
	defaultMemberLocationTemplates = 3
	defaultBaseSlots               = -1

	defaultStatusHour    = 9
	defaultActivityHour  = 20
	defaultPollInterval  = 15 * time.Minute
	defaultDeepLinkScheme = "pantry"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Entitlement sizes the default template allotment per owner identity.
	Entitlement EntitlementConfig `json:"entitlement" yaml:"entitlement"`

	// Reminders configures the two daily triggers and the worker loop.
	Reminders RemindersConfig `json:"reminders" yaml:"reminders"`

	// Firebase configuration for push delivery. Optional; when absent the
	// engine falls back to a log-only notifier.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EntitlementConfig sizes the template pool granted on first load and on
// identity change.
type EntitlementConfig struct {
	GuestLocationTemplates  int `json:"guestLocationTemplates" yaml:"guestLocationTemplates"`
	MemberLocationTemplates int `json:"memberLocationTemplates" yaml:"memberLocationTemplates"`
	// DefaultBaseSlots is the product capacity a location template grants.
	// -1 means unlimited.
	DefaultBaseSlots int `json:"defaultBaseSlots" yaml:"defaultBaseSlots"`
}

// TriggerConfig is the default preference for one daily trigger; per-owner
// preferences stored in the database take precedence.
type TriggerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Hour    int  `json:"hour" yaml:"hour"`
	Minute  int  `json:"minute" yaml:"minute"`
}

// RemindersConfig configures the status (A) and activity (B) triggers.
type RemindersConfig struct {
	Status         TriggerConfig `json:"status" yaml:"status"`
	Activity       TriggerConfig `json:"activity" yaml:"activity"`
	PollInterval   time.Duration `json:"pollInterval" yaml:"pollInterval"`
	DeepLinkScheme string        `json:"deepLinkScheme" yaml:"deepLinkScheme"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables, aligning each ENV_VAR segment with the
	// existing yaml keys so POSTGRES_SSLMODE maps to postgres.sslMode.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

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

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Entitlement.GuestLocationTemplates == 0 {
		cfg.Entitlement.GuestLocationTemplates = defaultGuestLocationTemplates
	}
	if cfg.Entitlement.MemberLocationTemplates == 0 {
		cfg.Entitlement.MemberLocationTemplates = defaultMemberLocationTemplates
	}
	if cfg.Entitlement.DefaultBaseSlots == 0 {
		cfg.Entitlement.DefaultBaseSlots = defaultBaseSlots
	}

	if cfg.Reminders.Status.Hour == 0 && cfg.Reminders.Status.Minute == 0 {
		cfg.Reminders.Status.Hour = defaultStatusHour
	}
	if cfg.Reminders.Activity.Hour == 0 && cfg.Reminders.Activity.Minute == 0 {
		cfg.Reminders.Activity.Hour = defaultActivityHour
	}
	if cfg.Reminders.PollInterval <= 0 {
		cfg.Reminders.PollInterval = defaultPollInterval
	}
	if strings.TrimSpace(cfg.Reminders.DeepLinkScheme) == "" {
		cfg.Reminders.DeepLinkScheme = defaultDeepLinkScheme
	}
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
