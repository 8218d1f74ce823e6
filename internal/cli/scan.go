package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/frame"
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Scan one face from an image",
	Long: `Classify the nine stickers of a face photographed in <image> and merge the
face into the working cube state.

The face index follows the capture order: 0 front, 1 back, 2 up, 3 down,
4 right, 5 left. Captures scoring below scanner.min_score are stored but not
merged unless --force is given.

Usage:
  cubescan scan front.png --face 0
  cubescan scan selfie.jpg --face 2 --mirrored`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var (
	scanFace     int
	scanMirrored bool
	scanForce    bool
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVarP(&scanFace, "face", "f", 0, "Capture index (0-5)")
	scanCmd.Flags().BoolVarP(&scanMirrored, "mirrored", "m", false, "Frame is mirrored horizontally")
	scanCmd.Flags().BoolVar(&scanForce, "force", false, "Merge the face regardless of its score")
	_ = scanCmd.MarkFlagRequired("face")
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := loggerFrom(cmd)

	img, format, err := frame.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("frame loaded", "path", args[0], "format", format, "bounds", img.Bounds())

	ws, err := openWorkspace(logger)
	if err != nil {
		return err
	}
	defer ws.Close()

	capture, err := newScanner(logger).ScanFace(frame.ToRGBA(img), cubescan.CaptureContext{
		FaceIndex: scanFace,
		Mirrored:  scanMirrored,
	})
	if err != nil {
		return err
	}

	accepted := scanForce || capture.Accepted(cfg.Scanner.MinScore)
	state, err := ws.session.RecordCapture(capture, accepted)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Face %s", capture.Face.Name())))
	fmt.Println()
	for row := range 3 {
		for col := range 3 {
			res := capture.Cells[row][col]
			fmt.Printf("%s %3.0f%%  ", sticker(capture.Grid.At(row, col)), res.Confidence*100)
		}
		fmt.Println()
	}
	fmt.Println()

	fmt.Printf("Score: %.1f  Valid: %d/9  Elapsed: %s\n", capture.Score, capture.Valid, capture.Elapsed)
	for _, ch := range capture.Corrections {
		fmt.Println(statusStyle.Render("  corrected " + ch.String()))
	}
	if capture.LowDiversity {
		fmt.Println(statusStyle.Render("  low colour diversity"))
	}

	if !accepted {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Rejected: score below %.0f (use --force to keep it)", cfg.Scanner.MinScore)))
		return nil
	}
	fmt.Printf("Merged. %s\n", stateSummary(state))
	return nil
}
