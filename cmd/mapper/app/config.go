package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	mapper "github.com/loukach/infocar-eurotax-mapper"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files. Command-line flags override
// these values after parsing.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Matching configuration
	Country         string
	ProfilesFile    string
	RefreshInterval time.Duration

	// Upstream providers
	CatalogueURL    string
	CatalogueAPIKey string
	XCatalogURL     string
	XCatalogAPIKey  string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.mapper.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	bindUpstreamKeys()

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".mapper")
		}
	}

	// Config file is optional
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		Country:         viper.GetString("country"),
		ProfilesFile:    viper.GetString("profiles_file"),
		RefreshInterval: viper.GetDuration("refresh_interval"),

		CatalogueURL:    viper.GetString("catalogue_url"),
		CatalogueAPIKey: viper.GetString("catalogue_api_key"),
		XCatalogURL:     viper.GetString("xcatalog_url"),
		XCatalogAPIKey:  viper.GetString("xcatalog_api_key"),

		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.Country == "" {
		config.Country = "it"
	}
	if config.RefreshInterval == 0 {
		config.RefreshInterval = mapper.DefaultRefreshInterval
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindUpstreamKeys explicitly binds upstream credential environment
// variables to Viper.
func bindUpstreamKeys() {
	keys := []string{
		"CATALOGUE_URL",
		"CATALOGUE_API_KEY",
		"XCATALOG_URL",
		"XCATALOG_API_KEY",
	}
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
