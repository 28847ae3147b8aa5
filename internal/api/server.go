// Package api is the supervisory HTTP surface of the controller. Every
// handler runs on the HTTP server's goroutines and reaches the control loop
// only through the Controller methods, which take the loop lock.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Pi3th0n/robocup-software/internal/joystick"
	"github.com/Pi3th0n/robocup-software/internal/logstore"
	"github.com/Pi3th0n/robocup-software/internal/monitoring"
	"github.com/Pi3th0n/robocup-software/internal/processor"
	"github.com/Pi3th0n/robocup-software/internal/state"
)

// ANSI escape codes used by LoggingMiddleware.
const (
	colorCyan      = "\033[36m"
	colorReset     = "\033[0m"
	colorYellow    = "\033[33m"
	colorBoldGreen = "\033[1;32m"
	colorBoldRed   = "\033[1;31m"
)

// Controller is the part of the processor exposed over HTTP.
type Controller interface {
	SetManualID(id int)
	ManualID() int
	SetBlueTeam(blue bool)
	BlueTeam() bool
	SetDefendPlusX(v bool)
	DefendPlusX() bool
	SetExternalReferee(v bool)
	ExternalReferee() bool
	SetSyncToVision(v bool)
	SyncToVision() bool
	InternalRefCommand(c byte)
	Autonomous() bool
	JoystickValid() bool
	GameState() state.GameState
	Status() processor.Status
}

// JoystickInput accepts operator input.
type JoystickInput interface {
	Set(in joystick.Input)
}

type Server struct {
	ctl      Controller
	joystick JoystickInput
	logs     *logstore.Store
	version  string
}

// NewServer creates a server. joy and logs may be nil; their routes then
// answer 404.
func NewServer(ctl Controller, joy JoystickInput, logs *logstore.Store, version string) *Server {
	return &Server{ctl: ctl, joystick: joy, logs: logs, version: version}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware logs method, path, status and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	log := monitoring.Component("api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Info().
			Str("status", statusCodeColor(lrw.statusCode)).
			Str("method", r.Method).
			Str("uri", colorCyan+r.RequestURI+colorReset).
			Float64("ms", float64(time.Since(start).Nanoseconds())/1e6).
			Msg("request")
	})
}

// ServeMux returns the API routes, rooted at /.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.showStatus)
	mux.HandleFunc("/config", s.handleConfig)
	mux.HandleFunc("/game", s.showGame)
	mux.HandleFunc("/referee", s.sendRefereeCommand)
	mux.HandleFunc("/joystick", s.setJoystick)
	mux.HandleFunc("/sessions", s.listSessions)
	mux.HandleFunc("/version", s.showVersion)
	return mux
}

// Handler mounts the API under /api/ on mux and wraps it in
// LoggingMiddleware.
func (s *Server) Handler(mux *http.ServeMux) http.Handler {
	mux.Handle("/api/", http.StripPrefix("/api", s.ServeMux()))
	return LoggingMiddleware(mux)
}

// ListenAndServe serves h on addr until ctx is done.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	log := monitoring.Component("api")
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()
	log.Info().Str("addr", addr).Msg("supervisory API listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
