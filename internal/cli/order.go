package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_model"
)

func newOrderCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "order <algorithm>",
		Short: "Count repetitions until an algorithm returns to solved",
		Example: `  gocube order "R U R' U'"
  gocube order "R U" --limit 200`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			alg := strings.Join(args, " ")

			moves, err := gocube.ParseAlgorithm(alg)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = a.settings.OrderLimit
			}

			n, err := gocube.Order(moves, limit)
			if errors.Is(err, gocube.ErrOrderNotFound) {
				fmt.Fprintf(out, "%s does not return to solved within %d repetitions\n", gocube.FormatMoves(moves), limit)
				return nil
			}
			if err != nil {
				return err
			}

			a.log.Debug().Str("alg", alg).Int("order", n).Msg("order found")
			fmt.Fprintf(out, "%s has order %d\n", gocube.FormatMoves(moves), n)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum repetitions to try (default from config)")
	return cmd
}
