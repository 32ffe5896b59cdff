package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

var (
	secretGetCmd = &cobra.Command{
		Use:   "get <field>",
		Short: "print a secret",
		Long:  "this command prints the value of the given secret, if set",
		Args:  cobra.ExactArgs(1),
		RunE:  secretGet,
	}
	secretSetCmd = &cobra.Command{
		Use:   "set <field> <value>",
		Short: "store a secret",
		Long:  "this command stores the given value for the given secret",
		Args:  cobra.ExactArgs(2),
		RunE:  secretSet,
	}
	secretUnsetCmd = &cobra.Command{
		Use:   "unset <field>",
		Short: "remove a secret",
		Long:  "this command removes the given secret from the store",
		Args:  cobra.ExactArgs(1),
		RunE:  secretUnset,
	}
	secretCmd = &cobra.Command{
		Use:   "secret",
		Short: "read or edit the wallet secrets",
		Long: fmt.Sprintf(
			"this command lets you read or edit the secrets held by the "+
				"secret store, one of: %s", strings.Join(secretFieldKeys(), ", "),
		),
	}
)

func init() {
	secretCmd.AddCommand(secretGetCmd, secretSetCmd, secretUnsetCmd)
}

func secretGet(_ *cobra.Command, args []string) error {
	field, err := parseSecretField(args[0])
	if err != nil {
		return err
	}
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	value, ok := svc.GetSecret(field)
	if !ok {
		return fmt.Errorf("%s is not set", field)
	}
	fmt.Println(value)
	return nil
}

func secretSet(_ *cobra.Command, args []string) error {
	field, err := parseSecretField(args[0])
	if err != nil {
		return err
	}
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	if err := svc.SetSecret(field, args[1]); err != nil {
		return err
	}
	fmt.Printf("%s has been set\n", field)
	return nil
}

func secretUnset(_ *cobra.Command, args []string) error {
	field, err := parseSecretField(args[0])
	if err != nil {
		return err
	}
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	if err := svc.UnsetSecret(field); err != nil {
		return err
	}
	fmt.Printf("%s has been unset\n", field)
	return nil
}

func parseSecretField(key string) (domain.SecretField, error) {
	field, ok := domain.ParseSecretField(key)
	if !ok {
		return -1, fmt.Errorf(
			"%w, must be one of: %s", domain.ErrUnknownSecretField,
			strings.Join(secretFieldKeys(), ", "),
		)
	}
	return field, nil
}

func secretFieldKeys() []string {
	fields := domain.SecretFields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key())
	}
	return keys
}
