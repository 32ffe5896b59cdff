package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	appconfig "github.com/vulpemventures/credstore/internal/app-config"
	"github.com/vulpemventures/credstore/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	appCfg *appconfig.AppConfig

	rootCmd = &cobra.Command{
		Use:   "credstore",
		Short: "CLI for the wallet credential store",
		Long: "This CLI lets you read and edit the secrets and preferences of " +
			"the wallet, and wipe all of its local data",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if appCfg != nil {
				appCfg.Close()
			}
		},
		SilenceUsage: true,
		Version:      formatVersion(),
	}
)

func init() {
	rootCmd.AddCommand(
		configCmd, secretCmd, mnemonicCmd, backupCmd, currencyCmd, txCmd,
		clearCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func formatVersion() string {
	return fmt.Sprintf(
		"\nVersion: %s\nCommit: %s\nDate: %s",
		version, commit, date,
	)
}
