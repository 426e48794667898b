package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	imerrors "github.com/btakita/import-meta-resolve"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every registered error code",
		Long: `List the registry catalog: each code with its base kind, rule shape,
arity, and (for template rules) the template text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := imerrors.Descriptors()
			if len(descriptors) == 0 {
				fmt.Println(dimStyle.Render("registry is empty"))
				return nil
			}

			fmt.Println(renderHeader(" Error Code Catalog "))
			fmt.Println()

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Code", "Kind", "Rule", "Arity", "Template")

			for _, d := range descriptors {
				template := d.Template
				if d.Rule == "function" {
					template = dimStyle.Render("<function>")
				} else if len(template) > 60 {
					template = template[:57] + "..."
				}
				table.Append(
					codeStyle.Render(string(d.Code)),
					kindStyle.Render(d.Kind),
					d.Rule,
					fmt.Sprintf("%d", d.Arity),
					template,
				)
			}

			table.Render()
			fmt.Println()
			fmt.Println(dimStyle.Render(fmt.Sprintf("%d codes registered", len(descriptors))))
			return nil
		},
	}
}
