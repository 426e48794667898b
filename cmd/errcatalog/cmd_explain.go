package main

import (
	"fmt"

	"github.com/spf13/cobra"

	imerrors "github.com/btakita/import-meta-resolve"
	"github.com/btakita/import-meta-resolve/zlog"
)

func newExplainCmd() *cobra.Command {
	var withSample bool

	cmd := &cobra.Command{
		Use:   "explain CODE",
		Short: "Show one code's registry entry and a rendered sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := imerrors.Code(args[0])
			d, ok := imerrors.Describe(code)
			if !ok {
				return fmt.Errorf("unknown error code %q", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderHeader(" "+string(d.Code)+" "))
			fmt.Fprintf(out, "kind:  %s\n", kindStyle.Render(d.Kind))
			fmt.Fprintf(out, "rule:  %s\n", d.Rule)
			fmt.Fprintf(out, "arity: %d\n", d.Arity)
			if d.Rule == "template" {
				fmt.Fprintf(out, "template: %s\n", d.Template)
			}

			if !withSample {
				return nil
			}

			e := imerrors.New(code, argsFor(d)...)
			fmt.Fprintln(out)
			fmt.Fprintln(out, dimStyle.Render("sample:"))
			fmt.Fprintln(out, e.Error())
			fmt.Fprintln(out, dimStyle.Render(e.StackText()))
			zlog.Attach(log.Debug(), e).Msg("rendered sample error")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withSample, "sample", "s", true, "Render a sample error with curated arguments")
	return cmd
}
