package cmd

import (
	"bufio"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/tobrecht/latchkey/internal/ui"
	"github.com/tobrecht/latchkey/internal/vault"
)

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <account>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a credential from the store",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			account := args[0]
			reader := bufio.NewReader(os.Stdin)

			v := openVault(reader)
			defer v.Close()

			if err := v.Delete(account); err != nil {
				if errors.Is(err, vault.ErrNotFound) {
					ui.Warn.Printf("  No entry found for %q\n", account)
				} else {
					ui.Bad.Printf("  Failed to remove credential: %v\n", err)
				}
				os.Exit(1)
			}

			ui.Good.Printf("  %s %s removed\n", ui.StatusIcon(true), account)
		},
	}
}
