package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/PeterLuschny/tablInspector/internal/oeis"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileYAML = "config.yaml"

	// Config keys.
	cfgKeyDataDir        = "data_dir"
	cfgKeyOEISEndpoint   = "oeis.endpoint"
	cfgKeyOEISMaxResults = "oeis.max_results"
	cfgKeyOEISRetries    = "oeis.retries"
	cfgKeyOEISBackoff    = "oeis.backoff_seconds"
	cfgKeyOEISRateLimit  = "oeis.rate_limit"
)

// appConfig is the loaded configuration, set by PersistentPreRunE.
var appConfig *viper.Viper

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# tabl CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# OEIS corpus client
oeis:
  endpoint: https://oeis.org/search
  max_results: 10
  retries: 3
  backoff_seconds: 2
  rate_limit: 1.0
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config.yaml is not an error; defaults apply. TABL_*
// environment variables override file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOEISEndpoint, oeis.DefaultEndpoint)
	v.SetDefault(cfgKeyOEISMaxResults, oeis.DefaultMaxResults)
	v.SetDefault(cfgKeyOEISRetries, oeis.DefaultRetries)
	v.SetDefault(cfgKeyOEISBackoff, int(oeis.DefaultBackoff/time.Second))
	v.SetDefault(cfgKeyOEISRateLimit, oeis.DefaultRateLimit)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("TABL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, errors.Wrap(err, "reading config")
	}
	return v, nil
}

// clientConfig builds the corpus client settings from the loaded config.
func clientConfig() oeis.Config {
	return oeis.Config{
		Endpoint:   appConfig.GetString(cfgKeyOEISEndpoint),
		MaxResults: appConfig.GetInt(cfgKeyOEISMaxResults),
		Retries:    appConfig.GetInt(cfgKeyOEISRetries),
		Backoff:    time.Duration(appConfig.GetInt(cfgKeyOEISBackoff)) * time.Second,
		RateLimit:  appConfig.GetFloat64(cfgKeyOEISRateLimit),
	}
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileYAML)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrap(err, "stat config file")
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
