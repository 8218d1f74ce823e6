package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to the working state",
	Long: `Apply a sequence of moves in standard notation (R U R' U2 ...) to the
working cube state. Every face the moves touch must have been captured.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the last applied move",
	RunE:  runUndo,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the moves applied in this session",
	RunE:  runHistory,
}

var historySimplify bool

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVarP(&historySimplify, "simplify", "s", false, "Merge adjacent turns of the same face")
}

func runApply(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(loggerFrom(cmd))
	if err != nil {
		return err
	}
	defer ws.Close()

	before := len(ws.session.History())
	state, err := ws.session.ApplyNotation(strings.Join(args, " "))
	applied := ws.session.History()[before:]
	if len(applied) > 0 {
		fmt.Printf("Applied: %s\n", moveStyle.Render(cubescan.FormatMoves(applied)))
	}
	if err != nil {
		var ise *cubescan.IncompleteStateError
		if errors.As(err, &ise) {
			return fmt.Errorf("%w (capture the %s face first)", err, ise.Face.Name())
		}
		return err
	}

	fmt.Println()
	fmt.Print(renderNet(state))
	fmt.Println(stateSummary(state))
	return nil
}

func runUndo(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(loggerFrom(cmd))
	if err != nil {
		return err
	}
	defer ws.Close()

	state, ok, err := ws.session.Undo()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Nothing to undo")
		return nil
	}

	fmt.Print(renderNet(state))
	fmt.Println(stateSummary(state))
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(loggerFrom(cmd))
	if err != nil {
		return err
	}
	defer ws.Close()

	moves := ws.session.History()
	if historySimplify {
		moves = cubescan.Simplify(moves)
	}
	if len(moves) == 0 {
		fmt.Println("No moves applied in this session")
		return nil
	}

	fmt.Printf("Session %s: %d moves\n", ws.session.SessionID(), len(moves))
	fmt.Println(moveStyle.Render(cubescan.FormatMoves(moves)))
	fmt.Println(statusStyle.Render("Inverse: " + cubescan.FormatMoves(cubescan.InverseMoves(moves))))
	return nil
}
