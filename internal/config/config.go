package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Debug   bool
	LogFile string
	Flavour string
	Format  string // preview format, json or yaml
	Indent  int    // spaces per level in the preview
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Debug:   getEnv(envKey("DEBUG"), "false") == "true",
		LogFile: getEnv(envKey("LOG_FILE"), defaultLogFile()),
		Flavour: getEnv(envKey("FLAVOUR"), "mocha"),
		Format:  strings.ToLower(getEnv(envKey("FORMAT"), FormatJSON)),
		Indent:  getEnvInt(envKey("INDENT"), 2),
	}
}

func (c *Config) Validate() error {
	if c.Format != FormatJSON && c.Format != FormatYAML {
		return fmt.Errorf("unknown preview format %q", c.Format)
	}
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("indent must be between 1 and 8, got %d", c.Indent)
	}
	return nil
}

// IndentString is the preview indent unit.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}

func envKey(name string) string {
	return strings.ToUpper(AppID) + "_" + name
}

func defaultLogFile() string {
	return filepath.Join(os.TempDir(), AppID+"-debug.log")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
