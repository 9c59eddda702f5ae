package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/service/screening"
)

// createRequest is the body of POST /v1/sessions. Empty fields fall
// back to the configured defaults.
type createRequest struct {
	Locale string `json:"locale"`
	Tone   string `json:"tone"`
}

// transcriptRequest is the body of POST /v1/sessions/{id}/transcript.
type transcriptRequest struct {
	Text string `json:"text"`
}

// transcriptResponse reports whether the text landed in an open
// listening window.
type transcriptResponse struct {
	Delivered bool `json:"delivered"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (reg *Registry) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Locale == "" {
		req.Locale = reg.cfg.Screening.DefaultLocale
	}
	code, err := locale.ParseCode(req.Locale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Tone == "" {
		req.Tone = reg.cfg.Screening.DefaultTone
	}
	tone, err := locale.ParseTone(req.Tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pack, err := locale.Load(code, tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e := reg.Create(r.Context(), pack)
	writeJSON(w, http.StatusCreated, e.session.Snapshot())
}

func (reg *Registry) handleGet(w http.ResponseWriter, r *http.Request) {
	e, ok := reg.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, e.session.Snapshot())
}

func (reg *Registry) handleStart(w http.ResponseWriter, r *http.Request) {
	e, ok := reg.lookup(w, r)
	if !ok {
		return
	}
	reg.command(w, r, e, e.session.Start)
}

func (reg *Registry) handleTranscript(w http.ResponseWriter, r *http.Request) {
	e, ok := reg.lookup(w, r)
	if !ok {
		return
	}
	if e.push == nil {
		writeError(w, http.StatusConflict, "transcript submission requires the push input provider")
		return
	}

	var req transcriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Submitting outside a listening window drops the text, matching
	// the one-transcript-per-prompt contract.
	delivered := e.push.Submit(req.Text)
	writeJSON(w, http.StatusOK, transcriptResponse{Delivered: delivered})
}

func (reg *Registry) handleAudio(w http.ResponseWriter, r *http.Request) {
	e, ok := reg.lookup(w, r)
	if !ok {
		return
	}
	if e.sink == nil {
		writeError(w, http.StatusConflict, "audio submission requires an audio-capable input provider")
		return
	}
	audio, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read audio body")
		return
	}
	if err := e.sink.SendAudio(r.Context(), audio); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (reg *Registry) handleAdvance(w http.ResponseWriter, r *http.Request) {
	e, ok := reg.lookup(w, r)
	if !ok {
		return
	}
	reg.command(w, r, e, e.session.Advance)
}

func (reg *Registry) handleSkip(w http.ResponseWriter, r *http.Request) {
	e, ok := reg.lookup(w, r)
	if !ok {
		return
	}
	reg.command(w, r, e, e.session.Skip)
}

func (reg *Registry) handleReset(w http.ResponseWriter, r *http.Request) {
	e, ok := reg.lookup(w, r)
	if !ok {
		return
	}
	reg.command(w, r, e, e.session.Reset)
}

// lookup resolves the session from the URL, writing a 404 on miss.
func (reg *Registry) lookup(w http.ResponseWriter, r *http.Request) (*entry, bool) {
	id := chi.URLParam(r, "sessionID")
	e, ok := reg.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return e, true
}

// command runs one session operation and responds with the updated
// snapshot. Lifecycle violations map to 409.
func (reg *Registry) command(w http.ResponseWriter, r *http.Request, e *entry, op func(ctx context.Context) error) {
	if err := op(r.Context()); err != nil {
		switch {
		case errors.Is(err, screening.ErrSessionNotStarted),
			errors.Is(err, screening.ErrSessionAlreadyStarted),
			errors.Is(err, screening.ErrSessionNotFinished):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, e.session.Snapshot())
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
