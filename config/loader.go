package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts file operations so the loader is testable without
// touching the real working directory.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // explicit config file path (optional)
	EnvFile    string // explicit .env file path (optional)
}

// LoaderOption is a functional option for LoadInto.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadInto loads configuration for a service into the provided cfg struct.
// Sources are merged in precedence order: config.yml first, then the
// process environment, then a .env file for anything not already set.
// Secrets (token signing keys) are expected from the environment, never
// from config.yml.
func LoadInto(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst(lc.FileSystem,
			fmt.Sprintf("./cmd/%s/config.yml", serviceName),
			"./config/config.yml",
			"./config.yml",
		)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst(lc.FileSystem,
			fmt.Sprintf(".env.%s", serviceName),
			".env",
		)
	}

	v := viper.New()

	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			return fmt.Errorf("config: load %s: %w", lc.EnvFile, err)
		}
		// Re-bind to pick up variables the .env file introduced.
		bindEnvVars(v)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", serviceName, err)
	}
	return nil
}

func findFirst(fs FileSystem, paths ...string) string {
	for _, p := range paths {
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}

// bindEnvVars maps UPPER_CASE_WITH_UNDERSCORES environment variables onto
// viper's nested keys so TOKEN_ACCESS_SECRET reaches token.access_secret.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		for _, variant := range envKeyVariants(pair[0]) {
			v.Set(variant, pair[1])
		}
	}
}

// envKeyVariants creates the nested key spellings an environment variable
// may correspond to.
//
//	TOKEN_ACCESS_SECRET -> [token_access_secret, token.access.secret, token.access_secret]
func envKeyVariants(envKey string) []string {
	lowerKey := strings.ToLower(envKey)
	parts := strings.Split(lowerKey, "_")
	if len(parts) <= 1 {
		return []string{lowerKey}
	}

	variants := []string{
		lowerKey,
		strings.ReplaceAll(lowerKey, "_", "."),
	}
	// Progressive nesting: each prefix becomes a section, the rest stays
	// a single key with underscores.
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return dedupe(variants)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
