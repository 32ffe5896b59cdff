package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/pkg/mnemonic"
)

var (
	entropySize uint32
	save        bool

	mnemonicGenerateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate a random mnemonic",
		Long: "this command lets you generate a new random BIP-39 mnemonic and " +
			"optionally store it in the secret store",
		RunE: mnemonicGenerate,
	}
	mnemonicCmd = &cobra.Command{
		Use:   "mnemonic",
		Short: "manage the wallet mnemonic",
	}
)

func init() {
	mnemonicGenerateCmd.Flags().Uint32Var(
		&entropySize, "entropy", 256,
		"entropy size in bits, 128 for 12 words or 256 for 24 words",
	)
	mnemonicGenerateCmd.Flags().BoolVar(
		&save, "save", false, "store the generated mnemonic as wallet mnemonic",
	)
	mnemonicCmd.AddCommand(mnemonicGenerateCmd)
}

func mnemonicGenerate(_ *cobra.Command, _ []string) error {
	words, err := mnemonic.NewMnemonic(mnemonic.NewMnemonicArgs{
		EntropySize: entropySize,
	})
	if err != nil {
		return err
	}
	phrase := strings.Join(words, " ")

	if save {
		svc, err := getCredentialService()
		if err != nil {
			return err
		}
		if _, ok := svc.Mnemonic(); ok {
			return fmt.Errorf(
				"a mnemonic is already stored, unset it first with " +
					"'credstore secret unset mnemonic'",
			)
		}
		if err := svc.SetSecret(domain.SecretMnemonic, phrase); err != nil {
			return err
		}
	}

	fmt.Println(phrase)
	return nil
}
