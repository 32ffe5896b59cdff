package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	backupStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "tell whether the mnemonic backup is done",
		RunE:  backupStatus,
	}
	backupDoneCmd = &cobra.Command{
		Use:   "done",
		Short: "mark the mnemonic backup as done",
		RunE:  backupDone,
	}
	backupCmd = &cobra.Command{
		Use:   "backup",
		Short: "read or mark the status of the mnemonic backup",
	}
)

func init() {
	backupCmd.AddCommand(backupStatusCmd, backupDoneCmd)
}

func backupStatus(_ *cobra.Command, _ []string) error {
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	printJSON(map[string]bool{"backed_up": svc.IsBackedUp()})
	return nil
}

func backupDone(_ *cobra.Command, _ []string) error {
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	if err := svc.MarkBackedUp(); err != nil {
		return err
	}
	fmt.Println("backup marked as done")
	return nil
}
