// Package server exposes the scanner and the working cube state over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/frame"
	"github.com/SeamusWaldron/cubescan/internal/recorder"
)

// Server serves the cube API.
type Server struct {
	session  *recorder.Session
	scanner  *cubescan.Scanner
	minScore float64
	logger   *log.Logger
}

// New creates a server over an active session.
func New(session *recorder.Session, scanner *cubescan.Scanner, minScore float64, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		session:  session,
		scanner:  scanner,
		minScore: minScore,
		logger:   logger,
	}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.healthz)
	r.Get("/state", s.getState)
	r.Put("/state", s.putState)
	r.Get("/moves", s.listMoves)
	r.Post("/moves", s.applyMoves)
	r.Post("/undo", s.undo)
	r.Post("/captures", s.capture)
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "elapsed", time.Since(start))
	})
}

type stateResponse struct {
	SessionID string         `json:"session_id"`
	State     cubescan.State `json:"state"`
	Complete  bool           `json:"complete"`
	Solved    bool           `json:"solved"`
	History   string         `json:"history"`
}

func (s *Server) stateResponse(state cubescan.State) stateResponse {
	return stateResponse{
		SessionID: s.session.SessionID(),
		State:     state,
		Complete:  state.IsComplete(),
		Solved:    state.IsComplete() && state.IsSolved(),
		History:   cubescan.FormatMoves(s.session.History()),
	}
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stateResponse(s.session.State()))
}

// putState replaces the working state, starting a new session.
func (s *Server) putState(w http.ResponseWriter, r *http.Request) {
	var state cubescan.State
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := s.session.Start("", state); err != nil {
		s.internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponse(state))
}

type movesRequest struct {
	Moves string `json:"moves"`
}

func (s *Server) listMoves(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, movesRequest{Moves: cubescan.FormatMoves(s.session.History())})
}

func (s *Server) applyMoves(w http.ResponseWriter, r *http.Request) {
	var req movesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	state, err := s.session.ApplyNotation(req.Moves)
	switch {
	case errors.Is(err, cubescan.ErrInvalidMove):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, cubescan.ErrIncompleteState):
		writeError(w, http.StatusConflict, err)
	case err != nil:
		s.internalError(w, err)
	default:
		writeJSON(w, http.StatusOK, s.stateResponse(state))
	}
}

func (s *Server) undo(w http.ResponseWriter, r *http.Request) {
	state, ok, err := s.session.Undo()
	if err != nil {
		s.internalError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusConflict, errors.New("nothing to undo"))
		return
	}
	writeJSON(w, http.StatusOK, s.stateResponse(state))
}

type captureResponse struct {
	CaptureID    string      `json:"capture_id"`
	Face         string      `json:"face"`
	Grid         [][]string  `json:"grid"`
	Confidence   [][]float64 `json:"confidence"`
	Score        float64     `json:"score"`
	Valid        int         `json:"valid"`
	Corrections  int         `json:"corrections"`
	Warnings     int         `json:"warnings"`
	LowDiversity bool        `json:"low_diversity"`
	Accepted     bool        `json:"accepted"`
}

// capture scans a raw image body. Query parameters: face (capture index
// 0-5), mirrored, force (accept regardless of score).
func (s *Server) capture(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	index, err := strconv.Atoi(q.Get("face"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("face: %w", err))
		return
	}
	mirrored, _ := strconv.ParseBool(q.Get("mirrored"))
	force, _ := strconv.ParseBool(q.Get("force"))

	img, _, err := frame.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := s.scanner.ScanFace(frame.ToRGBA(img), cubescan.CaptureContext{FaceIndex: index, Mirrored: mirrored})
	switch {
	case errors.Is(err, cubescan.ErrBusy):
		writeError(w, http.StatusConflict, err)
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err)
		return
	}

	accepted := force || c.Accepted(s.minScore)
	if _, err := s.session.RecordCapture(c, accepted); err != nil {
		s.internalError(w, err)
		return
	}

	resp := captureResponse{
		CaptureID:    c.ID,
		Face:         c.Face.Name(),
		Grid:         c.Grid.Names(),
		Confidence:   make([][]float64, 3),
		Score:        c.Score,
		Valid:        c.Valid,
		Corrections:  len(c.Corrections),
		Warnings:     c.Warnings,
		LowDiversity: c.LowDiversity,
		Accepted:     accepted,
	}
	for row := range 3 {
		resp.Confidence[row] = make([]float64, 3)
		for col := range 3 {
			resp.Confidence[row][col] = c.Cells[row][col].Confidence
		}
	}

	status := http.StatusOK
	if !accepted {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)
	writeError(w, http.StatusInternalServerError, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
