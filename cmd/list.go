package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tobrecht/latchkey/internal/ui"
	"github.com/tobrecht/latchkey/internal/vault"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored accounts (masked secrets)",
		Run: func(cmd *cobra.Command, args []string) {
			reader := bufio.NewReader(os.Stdin)

			v := openVault(reader)
			defer v.Close()

			ui.Banner("stored accounts")

			accounts := v.List()
			if len(accounts) == 0 {
				fmt.Println("  No credentials stored.")
				fmt.Println("  Run `latchkey add <account>` to add one")
				return
			}

			rows := make([][]string, 0, len(accounts))
			for _, account := range accounts {
				masked := "****"
				if secret, err := v.Get(account); err == nil {
					masked = vault.Mask(secret)
				}
				rows = append(rows, []string{account, masked})
			}
			ui.Table([]string{"ACCOUNT", "SECRET"}, rows)

			fmt.Printf("\n  %d credentials stored\n", v.Len())
		},
	}
}
