package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_model/internal/storage"
)

func newAlgCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alg",
		Short: "Manage the algorithm library",
		Long:  `Save, list, show and delete named algorithms. Only the notation is stored.`,
	}

	cmd.AddCommand(
		newAlgSaveCmd(a),
		newAlgListCmd(a),
		newAlgShowCmd(a),
		newAlgDeleteCmd(a),
	)
	return cmd
}

func newAlgSaveCmd(a *app) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:     "save <name> <algorithm>",
		Short:   "Save a named algorithm",
		Example: `  gocube alg save sune "R U R' U R U2 R'" --notes "OLL 27"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := a.openLibrary()
			if err != nil {
				return err
			}
			defer db.Close()

			alg, err := repo.Create(args[0], strings.Join(args[1:], " "), notes)
			if err != nil {
				return err
			}

			a.log.Info().Str("name", alg.Name).Str("id", alg.AlgorithmID).Msg("algorithm saved")
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %s (%d moves%s)\n",
				alg.Name, alg.Notation, alg.MoveCount, orderSuffix(alg))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newAlgListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := a.openLibrary()
			if err != nil {
				return err
			}
			defer db.Close()

			algs, err := repo.List(limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(algs) == 0 {
				fmt.Fprintln(out, "No algorithms saved")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMOVES\tORDER\tNOTATION")
			for _, alg := range algs {
				order := "-"
				if alg.Order != nil {
					order = fmt.Sprint(*alg.Order)
				}
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", alg.Name, alg.MoveCount, order, alg.Notation)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum number of algorithms to list")
	return cmd
}

func newAlgShowCmd(a *app) *cobra.Command {
	var showMoves bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Apply a saved algorithm and print the cube",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", titleStyle.Render(alg.Name))
			if alg.Notes != nil {
				fmt.Fprintln(out, statusStyle.Render(*alg.Notes))
			}

			tracker, err := a.applyAlgorithm(out, alg.Notation)
			if err != nil {
				return err
			}
			a.printCube(out, tracker, showMoves)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showMoves, "moves", "m", false, "List each expanded move")
	return cmd
}

func newAlgDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := a.openLibrary()
			if err != nil {
				return err
			}
			defer db.Close()

			removed, err := repo.Delete(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("algorithm %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

// lookup loads a saved algorithm by name.
func (a *app) lookup(name string) (*storage.Algorithm, error) {
	db, repo, err := a.openLibrary()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	alg, err := repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if alg == nil {
		return nil, fmt.Errorf("algorithm %q not found", name)
	}
	return alg, nil
}

func orderSuffix(alg *storage.Algorithm) string {
	if alg.Order == nil {
		return ""
	}
	return fmt.Sprintf(", order %d", *alg.Order)
}
