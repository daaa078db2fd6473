package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_model"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <algorithm>",
		Short: "Check an algorithm and print its canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			alg := strings.Join(args, " ")

			moves, err := gocube.ParseAlgorithm(alg)
			if err != nil {
				if pe, ok := err.(*gocube.ParseError); ok {
					fmt.Fprintln(out, alg)
					fmt.Fprintln(out, errorStyle.Render(caretLine(alg, pe.Pos)))
				}
				return err
			}

			a.log.Debug().Int("moves", len(moves)).Msg("parsed algorithm")
			fmt.Fprintf(out, "%s\n", gocube.FormatMoves(moves))
			fmt.Fprintf(out, "%d moves, inverse: %s\n", len(moves), gocube.FormatMoves(gocube.InverseMoves(moves)))
			return nil
		},
	}
}
