package main

import (
	"github.com/spf13/cobra"
	"github.com/vulpemventures/credstore/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Long: "this command prints the configuration in use, as resulting from " +
			"the defaults and the CREDSTORE_* environment variables",
		RunE: configPrint,
	}
)

func configPrint(_ *cobra.Command, _ []string) error {
	printJSON(config.AllSettings())
	return nil
}
