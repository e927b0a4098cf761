package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edover/praeda-go/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config.toml>",
	Short: "Validate a taxonomy config",
	Long:  `Parse a TOML taxonomy config and report whether it would load cleanly.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	store, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}

	types := store.Types()
	subtypes := 0
	for _, t := range types {
		subtypes += len(store.Subtypes(t.Name))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d qualities, %d types, %d subtypes)\n",
		args[0], len(store.Qualities()), len(types), subtypes)
	return nil
}
