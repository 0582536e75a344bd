package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kxyxlxex/JCL-AT-Buddy/internal/config"
	"github.com/kxyxlxex/JCL-AT-Buddy/internal/display"
)

var (
	cfgFile      string
	manifestFile string
)

var rootCmd = &cobra.Command{
	Use:   "jclbuddy",
	Short: "Build and serve a practice question bank from FJCL state forum tests",
	Long: `JCL Buddy turns the published State Latin Forum test PDFs into a
structured practice question bank.

The pipeline runs in stages: fetch downloads test and answer-key PDFs,
extract converts them to cleaned text, parse reconstructs the
multiple-choice questions, consolidate merges every year into one JSON
file per subject, and serve hosts the practice website.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		display.ErrorMsg(err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./jclbuddy.yaml)")
	rootCmd.PersistentFlags().StringVar(&manifestFile, "subjects", "subjects.yaml", "optional subject/year manifest")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("jclbuddy")
	}

	config.SetDefaults()
	viper.SetEnvPrefix("JCLBUDDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults and env vars carry the rest.
	}
}

// loadConfig builds the effective config, with the subjects manifest
// applied when present.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := config.ApplyManifest(cfg, manifestFile); err != nil {
		return nil, err
	}
	return cfg, nil
}
