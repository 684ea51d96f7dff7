package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apassphrase/internal/config"
	"apassphrase/internal/dictionary"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "apassphrase",
	Short: "Generate memorable random passphrases and emojiphrases",
	Long: `apassphrase generates hyphenated passphrases such as
"crimson-otter-leaps-quietly-bold" by drawing one word from each of its
colour, animal, verb, adverb and adjective dictionaries, and emojiphrases
made of one sport, animal, food and weather emoji.

Running 'apassphrase' without arguments opens the interactive display.
With --remote, phrases are fetched from a backend started with
'apassphrase serve' instead of being generated locally.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.Bool("remote", false, "fetch phrases from the backend instead of generating them")
	flags.String("backend", "", "backend base URL (default "+config.DefaultBackend+")")
	flags.String("dictionaries", "", "directory with words/ and emoji/ dictionary files")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("remote", flags.Lookup("remote"))
	viper.BindPFlag("backend", flags.Lookup("backend"))
	viper.BindPFlag("dictionaries", flags.Lookup("dictionaries"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

// initConfig lets APASSPHRASE_* environment variables stand in for flags.
func initConfig() {
	viper.SetEnvPrefix("APASSPHRASE")
	viper.AutomaticEnv()
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if viper.GetBool("remote") {
		cfg.Remote.Enabled = true
	}
	if backend := viper.GetString("backend"); backend != "" {
		cfg.Remote.BaseURL = backend
	}
	if dir := viper.GetString("dictionaries"); dir != "" {
		cfg.Dictionary.Dir = dir
	}
	if level := viper.GetString("log_level"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func loadDictionaries(cfg config.DictionaryConfig) (*dictionary.Set, error) {
	if cfg.Dir == "" {
		return dictionary.Default()
	}
	set, err := dictionary.LoadDir(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading dictionaries from %s: %w", cfg.Dir, err)
	}
	return set, nil
}

// newSource picks the remote backend or the local dictionaries.
func newSource(cfg *config.Config) (phraseSource, error) {
	if cfg.Remote.Enabled {
		return newRemoteClient(cfg.Remote), nil
	}
	set, err := loadDictionaries(cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	return newLocalSource(set), nil
}
