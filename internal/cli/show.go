package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
	"github.com/PeterLuschny/tablInspector/pkg/tables"
)

func newShowCmd() *cobra.Command {
	var rows int
	var view string

	cmd := &cobra.Command{
		Use:   "show <triangle>",
		Short: "Print the rows of a triangle",
		Long: `Show prints the first rows of a built-in triangle, optionally under
one of the base views: std, rev, alt, inv, revinv, invrev.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], rows, view)
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "r", 8, "number of rows to print")
	cmd.Flags().StringVar(&view, "view", "std", "view to apply (std, rev, alt, inv, revinv, invrev)")
	return cmd
}

func runShow(cmd *cobra.Command, name string, rows int, view string) error {
	if rows < 1 {
		return errors.New("rows must be positive")
	}

	base, err := tables.Lookup(name)
	if err != nil {
		return errors.Wrapf(err, "looking up %q (run 'tabl list' for the available triangles)", name)
	}

	t, err := applyView(base, view, rows)
	if err != nil {
		return err
	}

	if flags.jsonMode {
		out := make([][]string, rows)
		for n := 0; n < rows; n++ {
			row := t.Row(n)
			out[n] = make([]string, len(row))
			for k, v := range row {
				out[n][k] = v.String()
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := table.NewWriter()
	w.SetOutputMirror(cmd.OutOrStdout())
	w.SetStyle(table.StyleLight)
	w.SetTitle(t.Name())
	for n := 0; n < rows; n++ {
		row := t.Row(n)
		cells := make(table.Row, len(row)+1)
		cells[0] = fmt.Sprintf("[%d]", n)
		for k, v := range row {
			cells[k+1] = v.String()
		}
		w.AppendRow(cells)
	}
	w.Render()
	return nil
}

// applyView wraps the base triangle in the requested view. Inverse-based
// views are materialized at the requested size and may fail when the
// triangle has no exact integer inverse.
func applyView(t *tabl.Table, view string, size int) (*tabl.Table, error) {
	switch strings.ToLower(view) {
	case "", "std":
		return t, nil
	case "rev":
		return tabl.RevTable(t), nil
	case "alt":
		return tabl.AltTable(t), nil
	case "inv":
		return tabl.InvTable(t, size)
	case "revinv":
		return tabl.RevInvTable(t, size)
	case "invrev":
		return tabl.InvRevTable(t, size)
	default:
		return nil, errors.Newf("unknown view %q", view)
	}
}
