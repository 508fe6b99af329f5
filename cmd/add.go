package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tobrecht/latchkey/internal/ui"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <account>",
		Short: "Store a secret for an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			account := args[0]
			reader := bufio.NewReader(os.Stdin)

			v := openVault(reader)
			defer v.Close()

			fmt.Printf("  Enter secret for %s: ", ui.Brand.Sprint(account))
			secret, err := readSecret(reader)
			if err != nil {
				ui.Bad.Printf("  Failed to read secret: %v\n", err)
				os.Exit(1)
			}

			if err := v.Set(account, secret); err != nil {
				ui.Bad.Printf("  Failed to store secret: %v\n", err)
				os.Exit(1)
			}

			ui.Good.Printf("  %s %s stored\n", ui.StatusIcon(true), account)
		},
	}
}
