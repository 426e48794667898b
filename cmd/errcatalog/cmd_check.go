package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	imerrors "github.com/btakita/import-meta-resolve"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Construct every registered code and verify its invariants",
		Long: `check constructs one sample error per registered code, in parallel,
and verifies the construction invariants: the code round-trips, the
stack header carries the "<name> [<code>]:" prefix, and Error() matches
the name-code-message form exactly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := imerrors.Descriptors()

			var mu sync.Mutex
			failures := make(map[imerrors.Code]string)

			g, _ := errgroup.WithContext(context.Background())
			for _, d := range descriptors {
				g.Go(func() error {
					if reason := verifyCode(d); reason != "" {
						mu.Lock()
						failures[d.Code] = reason
						mu.Unlock()
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range descriptors {
				if reason, bad := failures[d.Code]; bad {
					fmt.Fprintf(out, "%s %s: %s\n", failStyle.Render("FAIL"), d.Code, reason)
					log.Error().
						Str("error_code", string(d.Code)).
						Str("reason", reason).
						Msg("catalog check failed")
				} else {
					fmt.Fprintf(out, "%s %s\n", okStyle.Render("ok"), d.Code)
				}
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d of %d codes failed verification", len(failures), len(descriptors))
			}
			fmt.Fprintf(out, "%d codes verified\n", len(descriptors))
			return nil
		},
	}
}

// verifyCode constructs one sample error and checks the construction
// invariants. Contract-violation panics (bad curated arity) are reported
// as failures rather than crashing the tool.
func verifyCode(d imerrors.Descriptor) (reason string) {
	defer func() {
		if r := recover(); r != nil {
			reason = fmt.Sprintf("construction panicked: %v", r)
		}
	}()

	e := imerrors.New(d.Code, argsFor(d)...)
	if e.Code() != d.Code {
		return fmt.Sprintf("code mismatch: got %s", e.Code())
	}

	header := e.Name() + " [" + string(d.Code) + "]: "
	if !strings.HasPrefix(e.StackText(), header) {
		return fmt.Sprintf("stack header %q missing prefix %q", firstLine(e.StackText()), header)
	}
	if want := header + e.Message(); e.Error() != want {
		return fmt.Sprintf("Error() %q != %q", e.Error(), want)
	}
	if e.Message() == "" {
		return "empty message"
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
