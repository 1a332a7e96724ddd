package cli

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/PeterLuschny/tablInspector/internal/oeis"
	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <term,term,...>",
		Short: "Identify a sequence against the OEIS",
		Long: `Lookup queries the OEIS for the given comma-separated integer
sequence. At least 24 terms are required. The match may start at a
small offset and may carry a global sign flip.`,
		Args: cobra.ExactArgs(1),
		RunE: runLookup,
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	seq, err := parseSeq(args[0])
	if err != nil {
		return err
	}
	if len(seq) < tabl.MinTerms {
		return errors.Wrapf(tabl.ErrInsufficientTerms,
			"%d terms given, %d required", len(seq), tabl.MinTerms)
	}

	client := oeis.NewClient(clientConfig())
	res, err := client.Query(cmd.Context(), seq)
	if err != nil {
		return err
	}

	if flags.jsonMode {
		out, err := json.Marshal(map[string]any{
			"anum":   res.Anum,
			"offset": res.Offset,
			"length": res.Length,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	switch {
	case res.Found():
		fmt.Fprintf(cmd.OutOrStdout(), "%s (offset %d, run %d)\n",
			oeis.Anum(res.Anum), res.Offset, res.Length)
	case res.Unreachable():
		fmt.Fprintln(cmd.OutOrStdout(), "corpus unreachable")
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "missing")
	}
	return nil
}

// parseSeq parses a comma-separated list of integers.
func parseSeq(s string) (tabl.Seq, error) {
	parts := strings.Split(s, ",")
	seq := make(tabl.Seq, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil, errors.Newf("bad term %q", p)
		}
		seq = append(seq, v)
	}
	return seq, nil
}
