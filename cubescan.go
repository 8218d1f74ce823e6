// Package cubescan reconstructs a 3x3 cube from camera frames and turns the
// reconstructed state with standard move notation.
//
// # Scanning
//
// A Scanner samples the nine facelets of a face, classifies each sample
// with four colour techniques, repairs implausible colour distributions and
// scores how well the face was aligned:
//
//	scanner := cubescan.NewScanner(cubescan.WithLogger(logger))
//	capture, err := scanner.ScanFace(frame, cubescan.CaptureContext{FaceIndex: 0})
//	if err != nil {
//	    return err
//	}
//	if capture.Accepted(70) {
//	    state = capture.Merge(state)
//	}
//
// Faces are captured in the order front, back, up, down, right, left.
//
// # Moves
//
// States are values. Apply returns a new State and never modifies its input:
//
//	s, err := cubescan.ApplyNotation(cubescan.Solved(), "R U R' U'")
//
// A move fails with an *IncompleteStateError when a face it touches has not
// been captured or holds an unknown sticker, and with an *InvalidMoveError
// when the notation is malformed.
//
// # Predefined Moves
//
//	cubescan.R      // Right clockwise
//	cubescan.RPrime // Right counter-clockwise
//	cubescan.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package cubescan
