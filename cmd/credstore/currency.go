package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vulpemventures/credstore/internal/core/domain"
)

var (
	currencyGetCmd = &cobra.Command{
		Use:   "get",
		Short: "print the selected currency",
		RunE:  currencyGet,
	}
	currencySetCmd = &cobra.Command{
		Use:   "set <code>",
		Short: "select a currency",
		Args:  cobra.ExactArgs(1),
		RunE:  currencySet,
	}
	currencyUnsetCmd = &cobra.Command{
		Use:   "unset",
		Short: "clear the selected currency",
		RunE:  currencyUnset,
	}
	currencyListCmd = &cobra.Command{
		Use:   "list",
		Short: "list the supported currencies",
		RunE:  currencyList,
	}
	currencyCmd = &cobra.Command{
		Use:   "currency",
		Short: "read or edit the currency preference",
	}
)

func init() {
	currencyCmd.AddCommand(
		currencyGetCmd, currencySetCmd, currencyUnsetCmd, currencyListCmd,
	)
}

func currencyGet(_ *cobra.Command, _ []string) error {
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	currency, ok := svc.GetCurrency()
	if !ok {
		return fmt.Errorf("currency is not set")
	}
	fmt.Println(currency.Code())
	return nil
}

func currencySet(_ *cobra.Command, args []string) error {
	currency, ok := domain.ParseCurrency(strings.ToUpper(args[0]))
	if !ok {
		return fmt.Errorf("%w %q", domain.ErrUnknownCurrency, args[0])
	}
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	if err := svc.SetCurrency(currency); err != nil {
		return err
	}
	fmt.Printf("currency set to %s\n", currency.Code())
	return nil
}

func currencyUnset(_ *cobra.Command, _ []string) error {
	svc, err := getCredentialService()
	if err != nil {
		return err
	}

	if err := svc.UnsetCurrency(); err != nil {
		return err
	}
	fmt.Println("currency has been unset")
	return nil
}

func currencyList(_ *cobra.Command, _ []string) error {
	currencies := domain.Currencies()
	list := make([]map[string]string, 0, len(currencies))
	for _, c := range currencies {
		list = append(list, map[string]string{"code": c.Code(), "name": c.Name()})
	}
	printJSON(list)
	return nil
}
