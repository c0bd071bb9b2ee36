// Package server exposes the Fourier pipeline over HTTP.
package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"honnef.co/go/epicycle"
	"honnef.co/go/epicycle/fourier"
	"honnef.co/go/epicycle/internal/config"
)

// ============================================================
// Server
// ============================================================

type Server struct {
	app *fiber.App
	cfg *config.Config
	log *slog.Logger
}

// New returns a server with all routes registered.
func New(cfg *config.Config, log *slog.Logger) *Server {
	s := &Server{cfg: cfg, log: log}
	s.app = fiber.New(fiber.Config{
		AppName:      "epicycle",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	s.app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | ${respHeader:X-Request-ID}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	s.app.Post("/analyze", s.analyze)
	s.app.Post("/schedule", s.schedule)
	s.app.Post("/reconstruct", s.reconstruct)
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on the configured address until the server is shut down.
func (s *Server) Listen() error {
	s.log.Info("starting server", "addr", s.cfg.ListenAddr)
	return s.app.Listen(s.cfg.ListenAddr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// handleError reports engine errors as bad requests. Errors raised by fiber
// itself keep their status code.
func (s *Server) handleError(c fiber.Ctx, err error) error {
	code := fiber.StatusBadRequest
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error("request failed", "id", requestid.FromContext(c), "path", c.Path(), "err", err)
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// ============================================================
// Handlers
// ============================================================

type analyzeRequest struct {
	Path string `json:"path"`
	// Optional sample count, a power of two.
	Samples int `json:"samples"`
}

type analyzeResponse struct {
	ID    string         `json:"id"`
	Terms []fourier.Term `json:"terms"`
}

func (s *Server) analyze(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return err
	}
	terms, err := s.analyzePath(req.Path, req.Samples)
	if err != nil {
		return err
	}
	return c.JSON(analyzeResponse{
		ID:    requestid.FromContext(c),
		Terms: terms,
	})
}

func (s *Server) analyzePath(path string, samples int) ([]fourier.Term, error) {
	opts := s.cfg.FourierOptions()
	if samples != 0 {
		opts.SampleCount = samples
	}
	return fourier.AnalyzePath(path, s.cfg.Measurer(), opts)
}

type scheduleRequest struct {
	// Either terms or a path to analyze.
	Terms []fourier.Term `json:"terms"`
	Path  string         `json:"path"`

	// Zero values fall back to the configured settings.
	PauseMS   int `json:"pauseMs"`
	AddMS     int `json:"addMs"`
	MaxGroups int `json:"maxGroups"`
}

// ScriptEntry is the wire form of [fourier.ScriptEntry].
type ScriptEntry struct {
	Offset             float64 `json:"offset"`
	StartTime          int64   `json:"startTime"`
	EndTime            int64   `json:"endTime"`
	UsingCircles       int     `json:"usingCircles"`
	UsingAmplitude     float64 `json:"usingAmplitude"`
	AddingCircles      int     `json:"addingCircles"`
	AddingAmplitude    float64 `json:"addingAmplitude"`
	AvailableCircles   int     `json:"availableCircles"`
	AvailableAmplitude float64 `json:"availableAmplitude"`
}

type scheduleResponse struct {
	ID     string        `json:"id"`
	Script []ScriptEntry `json:"script"`
}

func (s *Server) schedule(c fiber.Ctx) error {
	var req scheduleRequest
	if err := c.Bind().Body(&req); err != nil {
		return err
	}
	terms := req.Terms
	if len(terms) == 0 && req.Path != "" {
		var err error
		terms, err = s.analyzePath(req.Path, 0)
		if err != nil {
			return err
		}
	}

	opts := s.cfg.ScheduleOptions(terms)
	if req.PauseMS != 0 {
		opts.PauseTime = time.Duration(req.PauseMS) * time.Millisecond
	}
	if req.AddMS != 0 {
		opts.AddTime = time.Duration(req.AddMS) * time.Millisecond
	}
	if req.MaxGroups != 0 {
		opts.MaxGroupsToDisplay = req.MaxGroups
	}
	script, err := fourier.GroupTerms(opts)
	if err != nil {
		return err
	}
	return c.JSON(scheduleResponse{
		ID:     requestid.FromContext(c),
		Script: ScriptJSON(script),
	})
}

// ScriptJSON converts a script to its wire form, with times in milliseconds.
func ScriptJSON(script []fourier.ScriptEntry) []ScriptEntry {
	out := make([]ScriptEntry, len(script))
	for i, e := range script {
		out[i] = ScriptEntry{
			Offset:             e.Offset,
			StartTime:          e.StartTime.Milliseconds(),
			EndTime:            e.EndTime.Milliseconds(),
			UsingCircles:       e.UsingCircles,
			UsingAmplitude:     e.UsingAmplitude,
			AddingCircles:      e.AddingCircles,
			AddingAmplitude:    e.AddingAmplitude,
			AvailableCircles:   e.AvailableCircles,
			AvailableAmplitude: e.AvailableAmplitude,
		}
	}
	return out
}

type reconstructRequest struct {
	Terms []fourier.Term `json:"terms"`
	// Number of terms to sum. Zero means all of them.
	Count    int  `json:"count"`
	Start    int  `json:"start"`
	Segments int  `json:"segments"`
	Smooth   bool `json:"smooth"`
}

type reconstructResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func (s *Server) reconstruct(c fiber.Ctx) error {
	var req reconstructRequest
	if err := c.Bind().Body(&req); err != nil {
		return err
	}
	if len(req.Terms) == 0 {
		return fourier.ErrNoTerms
	}
	count := req.Count
	if count == 0 {
		count = len(req.Terms)
	}
	segments := req.Segments
	if segments == 0 {
		segments = s.cfg.Segments
	}

	var (
		path epicycle.Path
		err  error
	)
	if req.Smooth {
		path, err = epicycle.SampleParametricSmooth(fourier.Reconstruct(req.Terms, count, req.Start), segments)
	} else {
		path, err = fourier.ReconstructPath(req.Terms, count, req.Start, segments)
	}
	if err != nil {
		return err
	}
	return c.JSON(reconstructResponse{
		ID:   requestid.FromContext(c),
		Path: path.String(),
	})
}
