package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var passphraseCmd = &cobra.Command{
	Use:   "passphrase",
	Short: "Print random passphrases",
	Example: `  apassphrase passphrase
  apassphrase passphrase -n 5
  apassphrase passphrase --remote --backend http://localhost:8080/`,
	Args: cobra.NoArgs,
	RunE: runPassphrase,
}

var emojiphraseCmd = &cobra.Command{
	Use:   "emojiphrase",
	Short: "Print random emojiphrases, icons first and names below",
	Args:  cobra.NoArgs,
	RunE:  runEmojiphrase,
}

var (
	passphraseCount  int
	emojiphraseCount int
)

func init() {
	rootCmd.AddCommand(passphraseCmd, emojiphraseCmd)
	passphraseCmd.Flags().IntVarP(&passphraseCount, "count", "n", 1, "number of passphrases to print")
	emojiphraseCmd.Flags().IntVarP(&emojiphraseCount, "count", "n", 1, "number of emojiphrases to print")
}

func runPassphrase(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	for range max(passphraseCount, 1) {
		passphrase, err := src.Passphrase(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), passphrase)
	}
	return nil
}

func runEmojiphrase(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	for range max(emojiphraseCount, 1) {
		emojiphrase, err := src.Emojiphrase(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), emojiphrase.Icons)
		fmt.Fprintln(cmd.OutOrStdout(), emojiphrase.Names)
	}
	return nil
}
