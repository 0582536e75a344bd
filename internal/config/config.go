package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrNilConfig is returned when a nil Config is provided.
var ErrNilConfig = errors.New("config is nil")

// Config holds the full application configuration. The hard-coded
// directory paths and subject/year lists of the original scripts live
// here instead, with workable defaults.
type Config struct {
	// DataDir is the corpus root holding state_<year>/<subject>/ trees.
	DataDir string `mapstructure:"data_dir"`
	// SiteDir is the static website root served by `serve`.
	SiteDir string `mapstructure:"site_dir"`
	// SiteDataDir receives the consolidated per-subject JSON files.
	SiteDataDir string `mapstructure:"site_data_dir"`

	// BaseURL is the competition site scraped by `fetch`.
	BaseURL string `mapstructure:"base_url"`

	FirstYear int `mapstructure:"first_year"`
	LastYear  int `mapstructure:"last_year"`

	// Subjects are the subject categories fetched and consolidated.
	Subjects []string `mapstructure:"subjects"`

	LLM ProviderConfig `mapstructure:"llm"`
}

// ProviderConfig holds connection details for the LLM used by the
// semantic parser.
type ProviderConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// DefaultSubjects are the subject categories the competition has
// published tests for across the covered years.
var DefaultSubjects = []string{
	"Derivatives_I",
	"Derivatives_II",
	"History_of_the_Empire",
	"History_of_the_Monarchy_and_Republic",
	"Mottoes_Abbreviations_and_Quotations",
	"Mythology",
	"Vocabulary_I",
	"Vocabulary_II",
}

// SetDefaults registers default values on the global viper instance.
func SetDefaults() {
	viper.SetDefault("data_dir", "data/raw-data")
	viper.SetDefault("site_dir", "website")
	viper.SetDefault("site_data_dir", "website/data")
	viper.SetDefault("base_url", "https://www.fjcl.org")
	viper.SetDefault("first_year", 2009)
	viper.SetDefault("last_year", 2019)
	viper.SetDefault("subjects", DefaultSubjects)
}

// Load reads the viper-populated config into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Years lists the state_<year> directory names in range.
func (c *Config) Years() []string {
	if c.FirstYear == 0 || c.LastYear < c.FirstYear {
		return nil
	}
	years := make([]string, 0, c.LastYear-c.FirstYear+1)
	for y := c.FirstYear; y <= c.LastYear; y++ {
		years = append(years, fmt.Sprintf("state_%d", y))
	}
	return years
}

// ValidateSemantic checks the fields the semantic parser requires.
func ValidateSemantic(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if cfg.LLM.BaseURL == "" {
		return errors.New("llm.base_url is required (or JCLBUDDY_LLM_BASE_URL)")
	}
	if cfg.LLM.APIKey == "" {
		return errors.New("llm.api_key is required (or JCLBUDDY_LLM_API_KEY)")
	}
	if cfg.LLM.Model == "" {
		return errors.New("llm.model is required (or JCLBUDDY_LLM_MODEL)")
	}
	return nil
}

// Manifest is an optional subjects.yaml overriding the subject list and
// year range without touching the main config file.
type Manifest struct {
	Subjects  []string `yaml:"subjects"`
	FirstYear int      `yaml:"first_year"`
	LastYear  int      `yaml:"last_year"`
}

// ApplyManifest merges a subjects.yaml file into the config when the
// file exists; a missing file is not an error.
func ApplyManifest(cfg *Config, path string) error {
	if cfg == nil {
		return ErrNilConfig
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read manifest %q: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse manifest %q: %w", path, err)
	}

	if len(m.Subjects) > 0 {
		cfg.Subjects = m.Subjects
	}
	if m.FirstYear > 0 {
		cfg.FirstYear = m.FirstYear
	}
	if m.LastYear > 0 {
		cfg.LastYear = m.LastYear
	}
	return nil
}
