package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tobrecht/latchkey/internal/config"
	"github.com/tobrecht/latchkey/internal/logging"
	"github.com/tobrecht/latchkey/internal/ui"
)

var version = "0.3.0"

var (
	storeFlag      string
	passphraseFlag string
	debugMode      bool
)

var rootCmd = &cobra.Command{
	Use:   "latchkey",
	Short: "latchkey — the local credential store",
	Long: ui.Brand.Sprint(ui.Lock+" latchkey") + " — keep account secrets in one encrypted file\n" +
		ui.Subtle.Sprint("Unlocked with a master passphrase, saved after every change"),
	Version: version + " " + ui.Lock,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetDebug(debugMode)
		if cfg := config.Load(); !cfg.UI.Color {
			color.NoColor = true
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runSession()
	},
}

func init() {
	rootCmd.SetVersionTemplate("latchkey {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Path to the encrypted store file")
	rootCmd.PersistentFlags().StringVar(&passphraseFlag, "passphrase", "", "Master passphrase (prefer the prompt or LATCHKEY_PASSPHRASE)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		addCmd(),
		getCmd(),
		listCmd(),
		rmCmd(),
		rotateCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
