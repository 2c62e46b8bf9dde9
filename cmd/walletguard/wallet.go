package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/config"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

// withApp builds the app for one command and closes it afterwards.
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(config.Get())
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, args, a)
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the account wallet",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			password, err := config.PromptConfirmed("Account password")
			if err != nil {
				return err
			}
			defer clear(password)

			address, err := a.wallet.Generate(password)
			if err != nil {
				return err
			}
			outf(cmd, "Wallet generated: %s", address)
			return nil
		}),
	}
}

func addressCmd() *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the wallet address",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			w, err := a.wallet.Wallet()
			if err != nil {
				return err
			}
			outf(cmd, "%s", w.Address)
			if !reveal {
				return nil
			}

			password, err := config.Prompt("Account password")
			if err != nil {
				return err
			}
			defer clear(password)
			return a.wallet.WithPrivateKey(password, func(privateKey []byte) error {
				outf(cmd, "private key: %s", solana.PrivateKey(privateKey).String())
				return nil
			})
		}),
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "also print the private key (asks for the account password)")
	return cmd
}

func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an encrypted backup of the wallet",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			exportPassword, err := config.PromptConfirmed("Export password")
			if err != nil {
				return err
			}
			defer clear(exportPassword)

			file, err := a.wallet.Export(exportPassword)
			if err != nil {
				return err
			}
			if out == "" {
				return jsonPrint(cmd, file)
			}

			data, err := json.MarshalIndent(file, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal backup: %w", err)
			}
			if err := common.WriteFileAtomic(out, data, 0o600); err != nil {
				return err
			}
			outf(cmd, "Backup written to %s", out)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "backup file (default stdout)")
	return cmd
}

func importCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "import <backup-file>",
		Short: "Restore the wallet from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}
			exportPassword, err := config.Prompt("Export password")
			if err != nil {
				return err
			}
			defer clear(exportPassword)

			var current []byte
			if overwrite {
				if current, err = config.Prompt("Current account password"); err != nil {
					return err
				}
				defer clear(current)
			}

			address, err := a.wallet.Import(data, exportPassword, current, overwrite)
			if err != nil {
				return err
			}
			outf(cmd, "Wallet imported: %s", address)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing wallet")
	return cmd
}

func rekeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rekey",
		Short: "Change the account password",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			current, err := config.Prompt("Current account password")
			if err != nil {
				return err
			}
			defer clear(current)
			next, err := config.PromptConfirmed("New account password")
			if err != nil {
				return err
			}
			defer clear(next)

			if err := a.wallet.Rekey(current, next); err != nil {
				return err
			}
			outf(cmd, "Account password changed")
			return nil
		}),
	}
}
