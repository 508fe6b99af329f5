package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tobrecht/latchkey/internal/ui"
	"github.com/tobrecht/latchkey/internal/vault"
)

// runSession is the interactive menu loop behind a bare `latchkey`. It
// holds no state of its own — every action goes through the vault.
func runSession() {
	ui.Banner("interactive session")

	reader := bufio.NewReader(os.Stdin)
	v := openVault(reader)
	defer v.Close()

	for {
		fmt.Println()
		fmt.Println("  1. Add credential")
		fmt.Println("  2. Show credential")
		fmt.Println("  3. List accounts")
		fmt.Println("  4. Remove credential")
		fmt.Println("  5. Quit")
		fmt.Print("  Choose an option: ")

		choice, err := readLine(reader)
		if err != nil {
			// EOF ends the session like quit does
			fmt.Println()
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			sessionAdd(reader, v)
		case "2":
			sessionShow(reader, v)
		case "3":
			sessionList(v)
		case "4":
			sessionRemove(reader, v)
		case "5", "q", "quit", "exit":
			fmt.Println("  Goodbye!")
			return
		default:
			ui.Warn.Println("  Invalid option.")
		}
	}
}

func sessionAdd(reader *bufio.Reader, v *vault.Vault) {
	fmt.Print("  Account name: ")
	account, err := readLine(reader)
	if err != nil {
		return
	}

	fmt.Print("  Secret: ")
	secret, err := readSecret(reader)
	if err != nil {
		return
	}

	if err := v.Set(account, secret); err != nil {
		ui.Bad.Printf("  Failed to save: %v\n", err)
		return
	}
	ui.Good.Printf("  %s Saved.\n", ui.StatusIcon(true))
}

func sessionShow(reader *bufio.Reader, v *vault.Vault) {
	fmt.Print("  Account name: ")
	account, err := readLine(reader)
	if err != nil {
		return
	}

	secret, err := v.Get(account)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			ui.Warn.Println("  No entry found for that account.")
		} else {
			ui.Bad.Printf("  Lookup failed: %v\n", err)
		}
		return
	}
	fmt.Printf("  Secret: %s\n", secret)
}

func sessionList(v *vault.Vault) {
	accounts := v.List()
	if len(accounts) == 0 {
		fmt.Println("  No credentials stored.")
		return
	}
	fmt.Println("  Stored accounts:")
	for _, account := range accounts {
		fmt.Printf("  - %s\n", account)
	}
}

func sessionRemove(reader *bufio.Reader, v *vault.Vault) {
	fmt.Print("  Account name: ")
	account, err := readLine(reader)
	if err != nil {
		return
	}

	if err := v.Delete(account); err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			ui.Warn.Println("  No entry found for that account.")
		} else {
			ui.Bad.Printf("  Remove failed: %v\n", err)
		}
		return
	}
	ui.Good.Printf("  %s Removed.\n", ui.StatusIcon(true))
}
