// Package server exposes the footprint estimator over a small HTTP JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr         string
	Project      string                // default project name for certificates
	Defaults     model.UsageParameters // base for fields omitted from requests
	Estimator    footprint.Estimator
	Logger       zerolog.Logger
	EventsBuffer int
}

// Event is emitted for every successful evaluation.
type Event struct {
	ID          int64       `json:"id"`
	Type        string      `json:"type"`
	Timestamp   time.Time   `json:"timestamp"`
	RequestID   string      `json:"request_id"`
	ModelType   string      `json:"model_type"`
	Region      string      `json:"region"`
	TotalCO2Kg  float64     `json:"total_co2_kg"`
	WaterLiters float64     `json:"total_water_liters"`
	Grade       model.Grade `json:"grade"`
}

// Counters tallies requests by outcome.
type Counters struct {
	Evaluations  int64 `json:"evaluations"`
	Certificates int64 `json:"certificates"`
	Rejected     int64 `json:"rejected"`
	BadRequests  int64 `json:"bad_requests"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time             `json:"started_at"`
	UptimeSec       int64                 `json:"uptime_sec"`
	Counters        Counters              `json:"counters"`
	GradeCounts     map[model.Grade]int64 `json:"grade_counts"`
	LastEvaluation  time.Time             `json:"last_evaluation"`
	EventCount      int                   `json:"event_count"`
	SubscriberCount int                   `json:"subscriber_count"`
}

// Service provides the HTTP API runtime.
type Service struct {
	cfg Config
	now func() time.Time

	mu          sync.RWMutex
	startedAt   time.Time
	counters    Counters
	grades      map[model.Grade]int64
	lastEval    time.Time
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if len(cfg.Estimator.Tiers()) == 0 {
		cfg.Estimator = footprint.New(footprint.DefaultCalibration(), nil)
	}

	return &Service{
		cfg:       cfg,
		now:       time.Now,
		startedAt: time.Now(),
		grades:    make(map[model.Grade]int64),
		subs:      make(map[int]chan Event),
	}
}

// Handler returns the routed API with request logging applied.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /v1/evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /v1/certificate", s.handleCertificate)
	mux.HandleFunc("GET /v1/calibration", s.handleCalibration)
	mux.HandleFunc("GET /v1/tiers", s.handleTiers)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/events", s.handleEvents)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	return s.logRequests(mux)
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.cfg.Logger.Info().Str("addr", s.cfg.Addr).Msg("greenscore api listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.cfg.Logger.Info().Msg("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("greenscore http server: %w", err)
	}
}

func (s *Service) recordEvaluation(requestID string, p model.UsageParameters, r model.FootprintResult) {
	now := s.now()

	s.mu.Lock()
	s.counters.Evaluations++
	s.grades[r.Grade]++
	s.lastEval = now
	s.nextEventID++
	ev := Event{
		ID:          s.nextEventID,
		Type:        "evaluation",
		Timestamp:   now,
		RequestID:   requestID,
		ModelType:   p.ModelType.String(),
		Region:      p.Region.String(),
		TotalCO2Kg:  r.TotalCO2Kg,
		WaterLiters: r.TotalWaterLiters,
		Grade:       r.Grade,
	}
	s.mu.Unlock()

	s.publishEvent(ev)
}

func (s *Service) count(fn func(c *Counters)) {
	s.mu.Lock()
	fn(&s.counters)
	s.mu.Unlock()
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grades := make(map[model.Grade]int64, len(s.grades))
	for g, n := range s.grades {
		grades[g] = n
	}

	return Status{
		StartedAt:       s.startedAt,
		UptimeSec:       int64(s.now().Sub(s.startedAt).Seconds()),
		Counters:        s.counters,
		GradeCounts:     grades,
		LastEvaluation:  s.lastEval,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
