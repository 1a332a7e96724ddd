package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PeterLuschny/tablInspector/pkg/tables"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in triangles",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	if flags.jsonMode {
		type entry struct {
			Name     string   `json:"name"`
			Similars []string `json:"similars,omitempty"`
		}
		entries := make([]entry, 0, len(tables.All))
		for _, t := range tables.All {
			entries = append(entries, entry{Name: t.Name(), Similars: t.Similars()})
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
	w.AppendHeader(table.Row{"Triangle", "OEIS"})
	for _, t := range tables.All {
		w.AppendRow(table.Row{t.Name(), strings.Join(t.Similars(), ", ")})
	}
	w.Render()
	return nil
}
