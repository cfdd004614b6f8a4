package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode   `yaml:"mode"`
	HTTPAddr string `yaml:"http_addr"`

	DBDriver string `yaml:"db_driver"` // mongo|sqlite|postgres
	DBDSN    string `yaml:"db_dsn"`    // sqlite/postgres DSN
	MongoURI string `yaml:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db"`

	CORSOriginsOnline  []string `yaml:"cors_origins_online"`
	CORSOriginsOffline []string `yaml:"cors_origins_offline"`
}

// FromEnv builds the config from environment variables with offline-first
// defaults.
func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	driver := envOr("DB_DRIVER", "sqlite")
	if mode == ModeOnline && os.Getenv("DB_DRIVER") == "" {
		driver = "mongo"
	}
	return Config{
		Mode:               mode,
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		DBDriver:           driver,
		DBDSN:              envOr("DB_DSN", ""),
		MongoURI:           envOr("MONGO_URI", ""),
		MongoDB:            envOr("MONGO_DB", "studyforge"),
		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://lms.studyforge.dev"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:3010"),
	}
}

// Load returns the env config, overlaid with the YAML file at path when
// path is non-empty. File values win over environment values.
func Load(path string) (Config, error) {
	cfg := FromEnv()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Mode != ModeOffline && cfg.Mode != ModeOnline {
		return cfg, fmt.Errorf("invalid mode %q", cfg.Mode)
	}
	switch cfg.DBDriver {
	case "mongo", "sqlite", "postgres":
	default:
		return cfg, fmt.Errorf("invalid db_driver %q", cfg.DBDriver)
	}
	return cfg, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
