package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ChicagoDave/citysim/internal/pipeline"
	"github.com/ChicagoDave/citysim/pkg/analytics"
	"github.com/ChicagoDave/citysim/pkg/logger"
	"github.com/ChicagoDave/citysim/pkg/preview"
	"github.com/ChicagoDave/citysim/pkg/scene2d"
	"github.com/ChicagoDave/citysim/pkg/sim"
)

// Message is pushed to websocket clients. A "scene" message carries the
// full city; "tick" messages carry the latest snapshot and its events.
type Message struct {
	Type     string           `json:"type"`
	Scene    *scene2d.Scene2D `json:"scene,omitempty"`
	Snapshot *sim.Snapshot    `json:"snapshot,omitempty"`
	Events   []sim.Event      `json:"events,omitempty"`
}

// Server runs one simulated city and serves it over HTTP and websocket.
type Server struct {
	projectPath string
	port        int

	world *pipeline.World
	hub   *Broadcaster
}

// New creates a server for the given project directory. An empty path
// serves the default city.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		hub:         NewBroadcaster(),
	}
}

// Load generates the city and its residents.
func (s *Server) Load() error {
	cfg, err := pipeline.Load(s.projectPath)
	if err != nil {
		return err
	}
	w, err := pipeline.Build(cfg)
	if err != nil {
		return err
	}
	s.world = w
	return nil
}

// Handler returns the HTTP routes. Load must have succeeded first.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/city", s.handleCity)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/preview.png", s.handlePreview)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return mux
}

// Start loads the city, runs the simulation at its configured tick rate
// and serves HTTP until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Load(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interval := time.Duration(s.world.Spec.Simulation.TickSeconds * float64(time.Second))
	go func() {
		if err := s.world.Driver.Run(ctx, interval, s.publish); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.WithError(err).Error("simulation stopped")
		}
	}()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Warn("server shutdown failed")
		}
	}()

	logger.Log.WithFields(logrus.Fields{
		"addr":    "http://localhost" + srv.Addr,
		"project": s.projectPath,
		"city":    s.world.City.ID,
	}).Info("citysim server starting")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// publish is the driver's observer; it runs on the simulation goroutine.
func (s *Server) publish(snap sim.Snapshot, events []sim.Event) {
	if s.hub.SubscriberCount() == 0 {
		return
	}
	s.hub.Broadcast(Message{Type: "tick", Snapshot: &snap, Events: events})
}

func (s *Server) sceneMessage() Message {
	snap := s.world.Driver.Snapshot()
	return Message{Type: "scene", Scene: scene2d.Assemble(s.world.City, &snap)}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := newClient(s, conn)
	logger.Log.WithField("client", client.ID).Info("client connected")
	s.hub.SendTo(client.ID, s.sceneMessage())

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>citysim</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>citysim</h1>
<img src="/api/preview.png" style="max-width:80vmin;image-rendering:pixelated">
<p>Scene: <code>/api/city</code> &middot; Live stream: <code>/ws</code></p>
</div>
</body></html>`)
}

func (s *Server) handleCity(w http.ResponseWriter, _ *http.Request) {
	snap := s.world.Driver.Snapshot()
	writeJSON(w, scene2d.Assemble(s.world.City, &snap))
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	summary, report := analytics.Summarize(s.world.City, s.world.Driver)
	writeJSON(w, map[string]any{
		"summary":    summary,
		"validation": report,
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.world.Report)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.world.Spec)
}

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if err := preview.Render(s.world.City).WritePNG(w); err != nil {
		logger.Log.WithError(err).Warn("preview encode failed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("response encode failed")
	}
}
