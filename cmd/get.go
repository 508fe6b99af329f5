package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/tobrecht/latchkey/internal/ui"
	"github.com/tobrecht/latchkey/internal/vault"
)

func getCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "get <account>",
		Aliases: []string{"show"},
		Short:   "Print the secret for an account",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			account := args[0]
			reader := bufio.NewReader(os.Stdin)

			v := openVault(reader)
			defer v.Close()

			secret, err := v.Get(account)
			if err != nil {
				if errors.Is(err, vault.ErrNotFound) {
					ui.Warn.Printf("  No entry found for %q\n", account)
				} else {
					ui.Bad.Printf("  Lookup failed: %v\n", err)
				}
				os.Exit(1)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(secret); err != nil {
					ui.Bad.Printf("  Failed to copy to clipboard: %v\n", err)
					os.Exit(1)
				}
				ui.Good.Printf("  %s Secret for %s copied to clipboard\n", ui.StatusIcon(true), account)
				return
			}

			fmt.Println(secret)
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the secret to the clipboard instead of printing it")

	return cmd
}
