package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/PeterLuschny/tablInspector/internal/log"
	"github.com/PeterLuschny/tablInspector/internal/oeis"
	"github.com/PeterLuschny/tablInspector/internal/report"
	"github.com/PeterLuschny/tablInspector/pkg/tabl"
	"github.com/PeterLuschny/tablInspector/pkg/tables"
	"github.com/PeterLuschny/tablInspector/pkg/traits"
)

func newScanCmd() *cobra.Command {
	var (
		all     bool
		size    int
		output  string
		offline bool
	)

	cmd := &cobra.Command{
		Use:   "scan [triangle]",
		Short: "Explore a triangle and identify its traits against the OEIS",
		Long: `Scan evaluates every registered trait of a triangle under all base
transforms, fingerprints the resulting sequences, and identifies them
through the local cache and the OEIS. Results are emitted as JSONL,
one record per (triangle, transform, trait).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return errors.New("name exactly one triangle or use --all")
			}

			var targets []*tabl.Table
			if all {
				targets = tables.All
			} else {
				t, err := tables.Lookup(args[0])
				if err != nil {
					return errors.Wrapf(err, "looking up %q", args[0])
				}
				targets = []*tabl.Table{t}
			}
			return runScan(cmd, targets, size, output, offline)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "scan every built-in triangle")
	cmd.Flags().IntVar(&size, "size", tabl.MinRows, "number of rows to explore")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSONL to file instead of stdout")
	cmd.Flags().BoolVar(&offline, "offline", false, "skip corpus queries, use the local cache only")
	return cmd
}

func runScan(cmd *cobra.Command, targets []*tabl.Table, size int, output string, offline bool) error {
	st, err := openStore()
	if err != nil {
		return errors.Wrap(err, "opening fingerprint store (run 'tabl init' first)")
	}
	defer st.Close()

	var client *oeis.Client
	if !offline {
		client = oeis.NewClient(clientConfig())
	}
	matcher := oeis.NewMatcher(st, client)

	var out io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		out = f
	}
	w := report.NewWriter(out)
	defer w.Flush()

	log.Infow("scan started", "scan_id", w.ScanID(),
		"triangles", len(targets), "size", size, "offline", offline)

	for _, t := range targets {
		if err := scanOne(cmd, w, matcher, t, size); err != nil {
			if len(targets) == 1 {
				return err
			}
			// A structural failure in one triangle does not abort a batch.
			log.Errorw("scan failed for triangle", "triangle", t.Name(), "error", err)
		}
	}
	return nil
}

func scanOne(cmd *cobra.Command, w *report.Writer, matcher *oeis.Matcher, t *tabl.Table, size int) error {
	results, err := traits.Explore(t, size)
	if err != nil {
		return err
	}

	for _, res := range results {
		rec := report.Record{
			Triangle:  res.Table,
			Transform: res.Transform.String(),
			Trait:     res.Trait,
		}
		if res.Err != nil {
			rec.Error = res.Err.Error()
			if err := w.Write(rec); err != nil {
				return err
			}
			continue
		}

		match, fp, err := matcher.Match(cmd.Context(), res.Seq, oeis.Meta{
			Triangle:  res.Table,
			Transform: res.Transform.String(),
			Trait:     res.Trait,
			ScanID:    w.ScanID(),
		})
		if err != nil {
			return errors.Wrapf(err, "matching %s %s %s",
				res.Table, res.Transform, res.Trait)
		}

		rec.Anum = match.Anum
		rec.Hash = fp.Hash
		rec.Terms = fp.Terms
		if err := w.Write(rec); err != nil {
			return err
		}

		if match.Found() {
			log.Debugw("trait identified", "triangle", res.Table,
				"transform", res.Transform.String(), "trait", res.Trait,
				"anum", oeis.Anum(match.Anum))
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "scanned %s: %d sequences\n", t.Name(), len(results))
	return nil
}
