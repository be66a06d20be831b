package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"civicpulse/internal/config"
)

const defaultConfigFile = "config.json"

var (
	cfgFile string
	appCfg  *config.Config
)

// rootCmd - корневая команда; конфигурация загружается до запуска подкоманд.
var rootCmd = &cobra.Command{
	Use:          "civicpulse",
	Short:        "CivicPulse civic information API",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		appCfg = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+")")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// loadConfig читает явно заданный файл или необязательный config.json,
// затем накладывает .env и переменные окружения.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(defaultConfigFile)
	}
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	loaded, err := cfg.ApplyEnv()
	if err != nil {
		return nil, fmt.Errorf("could not apply environment: %w", err)
	}
	for _, f := range loaded {
		fmt.Fprintf(os.Stderr, "Using env file: %s\n", f)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
