package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config enumerates every external location the run touches. Values come
// from defaults, then an optional TOML file, then environment variables
// (a .env file is honoured); command-line flags override last in main.
type Config struct {
	TrackDir  string `toml:"track_dir"`
	TableFile string `toml:"table_file"`
	TokenFile string `toml:"token_file"`
	APIBase   string `toml:"api_base"`
}

func Default() Config {
	return Config{
		TrackDir:  "garmin-GPX-files",
		TableFile: "data.csv",
		TokenFile: ".fulcrum_api_token",
		APIBase:   "https://api.fulcrumapp.com/api/v2",
	}
}

// Load reads the config file at filename if it exists and applies
// environment overrides. A missing file is not an error.
func Load(filename string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(filename)
	if err == nil {
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", filename, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config out as TOML.
func (c Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

func (c *Config) applyEnv() {
	// Missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("GPXSYNC_TRACK_DIR"); ok {
		c.TrackDir = v
	}
	if v, ok := os.LookupEnv("GPXSYNC_TABLE_FILE"); ok {
		c.TableFile = v
	}
	if v, ok := os.LookupEnv("GPXSYNC_TOKEN_FILE"); ok {
		c.TokenFile = v
	}
	if v, ok := os.LookupEnv("GPXSYNC_API_BASE"); ok {
		c.APIBase = v
	}
}
