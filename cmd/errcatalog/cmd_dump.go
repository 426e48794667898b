package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	imerrors "github.com/btakita/import-meta-resolve"
)

func newDumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the registry catalog as JSON or YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := imerrors.Descriptors()

			var out []byte
			var err error
			switch format {
			case "json":
				out, err = json.MarshalIndent(descriptors, "", "  ")
			case "yaml":
				out, err = yaml.Marshal(descriptors)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")
	return cmd
}
