package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danirodriguezz/hirepilot/pkg/tailor"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema generated CV content must satisfy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tailor.ContentSchema())
			return err
		},
	}
}
