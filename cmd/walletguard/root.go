package main

import (
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/walletguard/internal/config"
	"github.com/AlexZinkM/walletguard/internal/logger"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "walletguard",
		Short:         "Wallet key custody and transaction authorization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			if err := config.Init(envFiles...); err != nil {
				return err
			}
			cfg := config.Get()
			logger.Init(logger.Config{Env: cfg.LogEnv, Level: cfg.LogLevel, Version: version})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before the environment (default .env when present)")

	root.AddCommand(
		serveCmd(),
		generateCmd(),
		addressCmd(),
		exportCmd(),
		importCmd(),
		rekeyCmd(),
		pinCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return jsonPrint(cmd, map[string]any{
				"version":  version,
				"commit":   commit,
				"modified": versioninfo.DirtyBuild,
				"built":    versioninfo.LastCommit,
			})
		},
	}
}

func jsonPrint(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
