package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	force bool

	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "wipe all local data",
		Long: "this command wipes the secrets, the cache and the local " +
			"transaction history. The currency preference is kept",
		RunE: clearAll,
	}
)

func init() {
	clearCmd.Flags().BoolVar(
		&force, "force", false, "don't ask for confirmation",
	)
}

func clearAll(_ *cobra.Command, _ []string) error {
	if !force {
		fmt.Print("this will permanently delete all secrets, continue? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	if err := svc.ClearAll(context.Background()); err != nil {
		return fmt.Errorf("data cleared partially: %w", err)
	}
	fmt.Println("all data cleared")
	return nil
}
