package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/theirongolddev/greenscore/internal/certificate"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/params"
)

const maxBodyBytes = 64 << 10

// EvaluateResponse is returned by POST /v1/evaluate.
type EvaluateResponse struct {
	Params model.UsageParameters `json:"params"`
	Result model.FootprintResult `json:"result"`
}

// CertificateRequest is accepted by POST /v1/certificate.
type CertificateRequest struct {
	Project string                `json:"project"`
	Params  model.UsageParameters `json:"params"`
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []params.FieldError `json:"fields,omitempty"`
}

type ctxKey struct{}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

		s.cfg.Logger.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, fmt.Sprintf("encoding response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

// rejectParams writes the error response for a failed decode or validation
// and reports whether the request was rejected.
func (s *Service) rejectParams(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil {
		return false
	}
	var verr *params.ValidationError
	if errors.As(err, &verr) {
		s.count(func(c *Counters) { c.Rejected++ })
		s.cfg.Logger.Warn().Str("request_id", requestID(r.Context())).Err(err).Msg("rejected parameters")
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Fields: verr.Fields})
		return true
	}
	s.count(func(c *Counters) { c.BadRequests++ })
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	return true
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	p := s.cfg.Defaults
	err := decodeBody(w, r, &p)
	if err == nil {
		err = params.Validate(p)
	}
	if s.rejectParams(w, r, err) {
		return
	}

	result := s.cfg.Estimator.Evaluate(p)
	s.recordEvaluation(requestID(r.Context()), p, result)
	writeJSON(w, http.StatusOK, EvaluateResponse{Params: p, Result: result})
}

func (s *Service) handleCertificate(w http.ResponseWriter, r *http.Request) {
	req := CertificateRequest{Params: s.cfg.Defaults}
	err := decodeBody(w, r, &req)
	p := req.Params
	if err == nil {
		err = params.Validate(p)
	}
	if s.rejectParams(w, r, err) {
		return
	}

	project := req.Project
	if project == "" {
		project = s.cfg.Project
	}
	if project == "" {
		project = params.DefaultProjectName
	}

	result := s.cfg.Estimator.Evaluate(p)
	s.recordEvaluation(requestID(r.Context()), p, result)
	s.count(func(c *Counters) { c.Certificates++ })

	cert := certificate.New(project, p, result, s.now())
	var buf bytes.Buffer
	if _, err := cert.WriteTo(&buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", certificate.FileName(project)))
	w.Header().Set("X-Certificate-ID", cert.ID.String())
	_, _ = w.Write(buf.Bytes())
}

func (s *Service) handleCalibration(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Estimator.Calibration())
}

func (s *Service) handleTiers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, footprint.Infos(s.cfg.Estimator.Tiers()))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
