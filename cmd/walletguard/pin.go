package main

import (
	"fmt"

	"github.com/AlexZinkM/walletguard/internal/config"

	"github.com/spf13/cobra"
)

func pinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage the transaction PIN of the local PIN service",
	}
	cmd.AddCommand(pinSetCmd(), pinChangeCmd())
	return cmd
}

func pinSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Set the transaction PIN",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			pins, err := a.requirePins()
			if err != nil {
				return err
			}
			pin, err := config.PromptConfirmed("New PIN")
			if err != nil {
				return err
			}
			defer clear(pin)

			if err := pins.SetPin(cmd.Context(), pin); err != nil {
				return err
			}
			outf(cmd, "PIN set")
			if a.cfg.PinCredentialPath == "" {
				outf(cmd, "warning: PIN_CREDENTIAL_PATH is empty, the PIN is kept in memory only")
			}
			return nil
		}),
	}
}

func pinChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change",
		Short: "Change the transaction PIN",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			pins, err := a.requirePins()
			if err != nil {
				return err
			}
			current, err := config.Prompt("Current PIN")
			if err != nil {
				return err
			}
			defer clear(current)
			next, err := config.PromptConfirmed("New PIN")
			if err != nil {
				return err
			}
			defer clear(next)

			res, err := pins.ChangePin(cmd.Context(), current, next)
			if err != nil {
				if res.AttemptsRemaining != nil {
					return fmt.Errorf("%w (%d attempts left)", err, *res.AttemptsRemaining)
				}
				return err
			}
			outf(cmd, "PIN changed")
			return nil
		}),
	}
}
