package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/metrica-go/metrica/internal/credentials"
	"github.com/metrica-go/metrica/internal/models"
)

const (
	appName        = "metrica"
	configFile     = "config.json"
	defaultProfile = "default"
)

type Config struct {
	Profile    string        `json:"profile"`
	DataDir    string        `json:"data_dir"`
	InitialURL string        `json:"initial_url,omitempty"`
	Activation models.Config `json:"activation"`

	// Reporters names the secondary reporters whose API keys live in the
	// keyring; ReporterKeys holds the resolved keys.
	Reporters    []string          `json:"reporters,omitempty"`
	ReporterKeys map[string]string `json:"-"`
}

func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(configDir, appName))
}

// LoadFrom reads config.json in appDir, writing a default one if missing,
// then fills secrets from the keyring and applies env overrides.
func LoadFrom(appDir string) (*Config, error) {
	path := filepath.Join(appDir, configFile)
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else {
		cfg.Profile = defaultProfile
		cfg.DataDir = filepath.Join(appDir, "data")
		if err := os.MkdirAll(appDir, 0700); err != nil {
			return nil, err
		}
		out, _ := json.MarshalIndent(cfg, "", "  ")
		_ = os.WriteFile(path, out, 0600)
		log.Printf("Generated new config at: %s", path)
	}

	if cfg.Profile == "" {
		cfg.Profile = defaultProfile
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(appDir, "data")
	}

	if cfg.Activation.APIKey == "" {
		if key, err := credentials.LoadAPIKey(cfg.Profile); err == nil {
			cfg.Activation.APIKey = key
		}
	}

	cfg.ReporterKeys = make(map[string]string, len(cfg.Reporters))
	for _, name := range cfg.Reporters {
		key, err := credentials.LoadReporterKey(cfg.Profile, name)
		if err != nil {
			continue
		}
		cfg.ReporterKeys[name] = key
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("METRICA_API_KEY"); v != "" {
		cfg.Activation.APIKey = v
	}
	if v := os.Getenv("METRICA_APP_VERSION"); v != "" {
		cfg.Activation.AppVersion = v
	}
	if v := os.Getenv("METRICA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("METRICA_INITIAL_URL"); v != "" {
		cfg.InitialURL = v
	}
	if v, err := strconv.ParseBool(os.Getenv("METRICA_LOGS")); err == nil {
		cfg.Activation.Logs = &v
	}
	if v, err := strconv.Atoi(os.Getenv("METRICA_SESSION_TIMEOUT")); err == nil {
		cfg.Activation.SessionTimeout = &v
	}
}
