package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaibhaw-/healthgen/internal/healthgen/config"
	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

var (
	cfgFile string
	Version = "v0.1"
	rootCmd = &cobra.Command{
		Use:           "healthgen",
		Short:         "healthgen - synthetic healthcare data and normalization runner",
		Long:          "healthgen: generate a reproducible healthcare_system load script and drive the normalization script against MySQL.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			} else {
				// default: ./healthgen.yaml
				v.SetConfigFile("healthgen.yaml")
			}
			v.SetEnvPrefix("HEALTHGEN")
			v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			v.AutomaticEnv()
			if err := v.ReadInConfig(); err != nil {
				// Every setting has a default, so a missing file is only worth a note.
				fmt.Fprintf(os.Stderr, "Warning: could not read config (%v). Using defaults and flags.\n", err)
			}
			if err := config.Load(v); err != nil {
				return err
			}

			cfg := config.Get()
			if err := logger.InitLogger(logger.LogConfig{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
			}); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./healthgen.yaml)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}
