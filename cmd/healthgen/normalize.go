package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaibhaw-/healthgen/internal/healthgen/config"
	"github.com/vaibhaw-/healthgen/internal/healthgen/normalize"
)

var (
	normalizeFlagScript     string
	normalizeFlagVerifyMode string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [username] [password]",
	Short: "Build healthcare_system_model_db by running the normalization script",
	Long: `Locate the mysql client, collect credentials, check that the denormalized
source table has rows, then stream the normalization script to the client.
Credentials not given as arguments are prompted for; the password is never echoed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nc := config.Get().Normalize
		if cmd.Flags().Changed("script") {
			nc.Script = normalizeFlagScript
		}
		if cmd.Flags().Changed("verify-mode") {
			nc.VerifyMode = normalizeFlagVerifyMode
		}

		o, err := buildOrchestrator(nc, cmd)
		if err != nil {
			return err
		}
		_, err = o.Run(cmd.Context(), args)
		// The orchestrator already printed the failure and its hints.
		return err
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeFlagScript, "script", "normalize_healthcare.sql", "normalization SQL script fed to the client")
	normalizeCmd.Flags().StringVar(&normalizeFlagVerifyMode, "verify-mode", "client", "how the source row count is checked: client or native")
}

func buildOrchestrator(nc config.NormalizeCfg, cmd *cobra.Command) (*normalize.Orchestrator, error) {
	cli := normalize.NewMySQLCLI(nc.ClientPaths, nc.ProbeTimeout)
	native := &normalize.NativeProber{
		Driver:   nc.Driver,
		Host:     nc.Host,
		Port:     nc.Port,
		Database: nc.SourceDatabase,
	}
	verifier, err := normalize.NewVerifier(nc.VerifyMode, cli, native)
	if err != nil {
		return nil, err
	}

	settings := normalize.Settings{
		SourceDatabase: nc.SourceDatabase,
		SourceTable:    nc.SourceTable,
		TargetDatabase: nc.TargetDatabase,
		ScriptPath:     nc.Script,
		ProbeTimeout:   nc.ProbeTimeout,
		ExecTimeout:    nc.ExecTimeout,
		RunLog:         nc.RunLog,
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("normalize config: %w", err)
	}

	return &normalize.Orchestrator{
		Client:   cli,
		Verifier: verifier,
		Prompter: normalize.NewTerminalPrompter(os.Stdin, cmd.OutOrStdout()),
		Out:      cmd.OutOrStdout(),
		Settings: settings,
	}, nil
}
