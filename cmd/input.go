package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/tobrecht/latchkey/internal/config"
	"github.com/tobrecht/latchkey/internal/ui"
	"github.com/tobrecht/latchkey/internal/vault"
)

// readLine reads one line of visible input.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readSecret reads one line without echo when stdin is a terminal, and
// falls back to a plain line read when input is piped.
func readSecret(reader *bufio.Reader) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return readLine(reader)
}

// readPassphrase resolves the master passphrase: --passphrase flag, then
// LATCHKEY_PASSPHRASE, then a hidden prompt.
func readPassphrase(reader *bufio.Reader) (string, error) {
	if passphraseFlag != "" {
		return passphraseFlag, nil
	}
	if env, ok := os.LookupEnv("LATCHKEY_PASSPHRASE"); ok {
		return env, nil
	}
	fmt.Print("  Master passphrase: ")
	return readSecret(reader)
}

// resolveStorePath picks the store file: --store flag, then config, then
// the default under the config dir.
func resolveStorePath() string {
	if storeFlag != "" {
		return storeFlag
	}
	cfg := config.Load()
	if cfg.Store.Path != "" {
		return cfg.Store.Path
	}
	return filepath.Join(config.ConfigDir(), "store.enc")
}

func kdfParams(cfg *config.Config) vault.Params {
	p := vault.DefaultParams
	if cfg.KDF.Time > 0 {
		p.Time = cfg.KDF.Time
	}
	if cfg.KDF.Memory > 0 {
		p.Memory = cfg.KDF.Memory
	}
	if cfg.KDF.Threads > 0 {
		p.Threads = cfg.KDF.Threads
	}
	return p
}

// openVault unlocks the store or exits. Authentication failures are fatal
// with no re-prompt; the message does not say whether the passphrase was
// wrong or the file tampered with.
func openVault(reader *bufio.Reader) *vault.Vault {
	passphrase, err := readPassphrase(reader)
	if err != nil {
		ui.Bad.Printf("  Failed to read passphrase: %v\n", err)
		os.Exit(1)
	}

	v, err := vault.Open(resolveStorePath(), passphrase, kdfParams(config.Load()))
	if err != nil {
		switch {
		case errors.Is(err, vault.ErrAuthFailed):
			ui.Bad.Println("  Failed to decrypt store — wrong passphrase or corrupted store")
		case errors.Is(err, vault.ErrCorrupt):
			ui.Bad.Printf("  Store did not decode after decryption: %v\n", err)
		default:
			ui.Bad.Printf("  Failed to open store: %v\n", err)
		}
		os.Exit(1)
	}
	return v
}
