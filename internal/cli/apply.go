package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_model"
)

func newApplyCmd(a *app) *cobra.Command {
	var showMoves bool

	cmd := &cobra.Command{
		Use:   "apply <algorithm>",
		Short: "Apply an algorithm to a solved cube",
		Long: `Apply an algorithm in standard notation to a solved cube and print the
resulting net.

Face letters F B R L U D and slice letters M E S are accepted in either
case. An apostrophe reverses a move and a trailing count repeats it.`,
		Example: `  gocube apply "R U R' U'"
  gocube apply "M2 E2 S2" --moves`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := strings.Join(args, " ")
			tracker, err := a.applyAlgorithm(cmd.OutOrStdout(), alg)
			if err != nil {
				return err
			}
			a.printCube(cmd.OutOrStdout(), tracker, showMoves)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showMoves, "moves", "m", false, "List each expanded move")
	return cmd
}

// newTracker builds a tracker configured from the loaded settings.
func (a *app) newTracker() *gocube.Tracker {
	return gocube.NewTracker(
		gocube.WithInvariantChecks(a.settings.InvariantChecks),
		gocube.WithLogger(a.log),
	)
}

// applyAlgorithm parses alg and applies it to a fresh tracker. Parse
// errors are reported with a caret under the offending character.
func (a *app) applyAlgorithm(out io.Writer, alg string) (*gocube.Tracker, error) {
	tracker := a.newTracker()
	a.log.Debug().Str("alg", alg).Msg("applying algorithm")

	if err := tracker.ApplyAlgorithm(alg); err != nil {
		var pe *gocube.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintln(out, alg)
			fmt.Fprintln(out, errorStyle.Render(caretLine(alg, pe.Pos)))
		}
		return nil, err
	}
	return tracker, nil
}

func (a *app) printCube(out io.Writer, tracker *gocube.Tracker, showMoves bool) {
	moves := tracker.Moves()
	fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Moves:"), moveStyle.Render(gocube.FormatMoves(moves)))
	if showMoves {
		for i, m := range moves {
			turn, _ := m.Turn()
			fmt.Fprintf(out, "  %3d  %-3s %s\n", i+1, m.Notation(), statusStyle.Render(turn.String()))
		}
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, renderNet(tracker.Cube(), a.settings.Color))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Solved: %v\n", tracker.IsSolved())
}
