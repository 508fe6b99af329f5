package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tobrecht/latchkey/internal/ui"
)

func rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Re-encrypt the store under a new passphrase",
		Long: "Re-encrypt the store under a new passphrase with a fresh salt and nonce.\n" +
			"Also rewrites stores created by older versions in the current format.",
		Run: func(cmd *cobra.Command, args []string) {
			reader := bufio.NewReader(os.Stdin)

			v := openVault(reader)
			defer v.Close()

			fmt.Print("  New passphrase: ")
			newPassphrase, err := readSecret(reader)
			if err != nil {
				ui.Bad.Printf("  Failed to read passphrase: %v\n", err)
				os.Exit(1)
			}

			fmt.Print("  Confirm new passphrase: ")
			confirm, err := readSecret(reader)
			if err != nil {
				ui.Bad.Printf("  Failed to read passphrase: %v\n", err)
				os.Exit(1)
			}

			if newPassphrase != confirm {
				ui.Bad.Println("  Passphrases do not match — store unchanged")
				os.Exit(1)
			}

			if err := v.Rotate(newPassphrase); err != nil {
				ui.Bad.Printf("  Rotation failed: %v\n", err)
				os.Exit(1)
			}

			ui.Good.Printf("  %s Store re-encrypted under the new passphrase\n", ui.StatusIcon(true))
		},
	}
}
