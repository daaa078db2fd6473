package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_model"
)

func newScrambleCmd(a *app) *cobra.Command {
	var (
		length int
		seed   uint64
		show   bool
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a random scramble",
		Long: `Generate a random scramble of outer face turns. No face is turned twice
in a row. The seed is printed so the same scramble can be reproduced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if length <= 0 {
				length = a.settings.ScrambleLength
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.settings.ScrambleSeed
			}
			if seed == 0 {
				seed = rand.Uint64()
			}

			tracker := a.newTracker()
			moves := tracker.Scramble(rand.New(rand.NewPCG(seed, seed)), length)
			a.log.Debug().Uint64("seed", seed).Int("length", length).Msg("scramble generated")

			if !show {
				fmt.Fprintf(out, "%s\n", gocube.FormatMoves(moves))
				fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("seed %d", seed)))
				return nil
			}
			a.printCube(out, tracker, false)
			fmt.Fprintln(out, statusStyle.Render(fmt.Sprintf("seed %d", seed)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 0, "Number of moves (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	cmd.Flags().BoolVar(&show, "show", false, "Apply the scramble and print the cube")
	return cmd
}
