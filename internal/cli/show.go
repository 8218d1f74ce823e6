package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the working cube state",
	Long:  `Draw the working cube state as an unfolded net, with the captures stored for the session.`,
	RunE:  runShow,
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent scan sessions",
	RunE:  runSessions,
}

var (
	showFace      string
	sessionsLimit int
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sessionsCmd)
	showCmd.Flags().StringVarP(&showFace, "face", "f", "", "Show a single face (front, U, ...)")
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 10, "Number of sessions to list")
}

func runShow(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(loggerFrom(cmd))
	if err != nil {
		return err
	}
	defer ws.Close()

	state := ws.session.State()

	if showFace != "" {
		face, err := cubescan.ParseFace(showFace)
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render(face.Name()))
		fmt.Print(renderGrid(state, face))
		return nil
	}

	fmt.Println(titleStyle.Render("Session " + ws.session.SessionID()))
	fmt.Println()
	fmt.Print(renderNet(state))
	fmt.Println()
	fmt.Println(stateSummary(state))

	counts := state.ColorCounts()
	for _, c := range cubescan.Colors {
		if counts[c] != 9 && state.FaceCount() == 6 {
			fmt.Println(errorStyle.Render(fmt.Sprintf("  %s appears %d times", c.Name(), counts[c])))
		}
	}

	captures, err := storage.NewCaptureRepository(ws.db).ListBySession(ws.session.SessionID())
	if err != nil {
		return err
	}
	if len(captures) > 0 {
		fmt.Println()
		fmt.Println("Captures:")
		for _, c := range captures {
			status := "merged"
			if !c.Accepted {
				status = "rejected"
			}
			fmt.Printf("  %s  %-6s score %5.1f  valid %d/9  %s\n",
				c.CreatedAt.Local().Format(time.Kitchen), c.Grid.Face.Name(), c.Score, c.ValidCells, statusStyle.Render(status))
		}
	}
	return nil
}

func runSessions(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(loggerFrom(cmd))
	if err != nil {
		return err
	}
	defer ws.Close()

	sessions, err := storage.NewSessionRepository(ws.db).List(sessionsLimit)
	if err != nil {
		return err
	}

	for _, s := range sessions {
		marker := " "
		if s.SessionID == ws.session.SessionID() {
			marker = "*"
		}
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}
		fmt.Printf("%s %s  %s  %d faces  %s\n", marker, s.SessionID,
			s.UpdatedAt.Local().Format(time.RFC3339), s.State.FaceCount(), notes)
	}
	return nil
}
