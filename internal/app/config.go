package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/xenking/order-report/internal/report"
)

// Config holds the application configuration, loadable from environment
// variables (ORDER_ prefix), flags, or YAML config files.
type Config struct {
	Format string `default:"text" usage:"Report format: text or json" flag:"format"`
}

// ReportFormat returns the validated report format.
func (c *Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files.
func LoadConfig() (*Config, error) {
	return loadConfig(aconfig.Config{
		EnvPrefix: "ORDER",
		Files:     []string{"order-report.yaml", "/etc/order-report/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func loadConfig(ac aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, ac).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if _, err := cfg.ReportFormat(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}
