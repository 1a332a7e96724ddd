package cli

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PeterLuschny/tablInspector/pkg/fingerprint"
	"github.com/PeterLuschny/tablInspector/pkg/tables"
	"github.com/PeterLuschny/tablInspector/pkg/traits"
)

func newTraitsCmd() *cobra.Command {
	var terms int

	cmd := &cobra.Command{
		Use:   "traits [triangle]",
		Short: "List the trait registry, or apply it to a triangle",
		Long: `Without arguments, traits lists every registered trait. With a
triangle name, it applies the full registry to that triangle and prints
the leading terms of each resulting sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTraitsList(cmd)
			}
			return runTraitsApply(cmd, args[0], terms)
		},
	}
	cmd.Flags().IntVar(&terms, "terms", 12, "number of terms to print per trait")
	return cmd
}

func runTraitsList(cmd *cobra.Command) error {
	if flags.jsonMode {
		type entry struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
			Size int    `json:"size"`
			TeX  string `json:"tex,omitempty"`
		}
		entries := make([]entry, 0, len(traits.Registry))
		for _, tr := range traits.Registry {
			entries = append(entries, entry{
				Name: tr.Name, Kind: kindName(tr.Kind), Size: tr.Size, TeX: tr.TeX,
			})
		}
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := table.NewWriter()
	w.SetOutputMirror(cmd.OutOrStdout())
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"Trait", "Kind", "Size", "Formula"})
	for _, tr := range traits.Registry {
		w.AppendRow(table.Row{tr.Name, kindName(tr.Kind), tr.Size, tr.TeX})
	}
	w.Render()
	return nil
}

func runTraitsApply(cmd *cobra.Command, name string, terms int) error {
	t, err := tables.Lookup(name)
	if err != nil {
		return errors.Wrapf(err, "looking up %q", name)
	}

	w := table.NewWriter()
	w.SetOutputMirror(cmd.OutOrStdout())
	w.SetStyle(table.StyleLight)
	w.SetTitle(t.Name())
	w.AppendHeader(table.Row{"Trait", "Sequence"})
	for _, tr := range traits.Registry {
		seq, err := traits.ApplyChecked(tr, t)
		switch {
		case err != nil:
			w.AppendRow(table.Row{tr.Name, fmt.Sprintf("error: %v", err)})
		case seq == nil:
			w.AppendRow(table.Row{tr.Name, "(not applicable)"})
		default:
			s := fingerprint.SeqToString(seq, fingerprint.MaxStrLen, terms, ", ", false)
			w.AppendRow(table.Row{tr.Name, s})
		}
	}
	w.Render()
	return nil
}

func kindName(k traits.Kind) string {
	if k == traits.TableBased {
		return "table"
	}
	return "row"
}
