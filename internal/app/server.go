package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glasform/glasform/internal/flow"
	"github.com/glasform/glasform/internal/form"
	"github.com/glasform/glasform/internal/observe"
	"github.com/glasform/glasform/internal/webhook"
	"github.com/glasform/glasform/pkg/speech"
)

// Operator-facing gate messages.
const (
	msgLoginRequired  = "Molimo prijavite se s agentskom šifrom prije generiranja dokumenta."
	msgFormIncomplete = "Molimo ispunite sva polja ispravno prije generiranja dokumenta."
	msgWebhookFailed  = "Greška prilikom povezivanja s webhookom. Provjerite internetsku vezu."
)

func (a *App) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", a.handleLogin)
	mux.Handle("GET /api/form", a.requireAgent(a.handleForm))
	mux.Handle("POST /api/field/{key}/capture", a.requireAgent(a.handleCapture))
	mux.Handle("POST /api/field/{key}/transcript", a.requireAgent(a.handleTranscript))
	mux.Handle("POST /api/field/{key}/value", a.requireAgent(a.handleValue))
	mux.Handle("POST /api/field/{key}/edit", a.requireAgent(a.handleEdit))
	mux.Handle("POST /api/submit", a.requireAgent(a.handleSubmit))

	a.checks.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// The wsrelay provider doubles as the websocket endpoint the
	// handheld device connects to.
	if h, ok := a.provider.(http.Handler); ok {
		mux.Handle("GET /ws/speech", h)
	}

	return mux
}

// requireAgent rejects form traffic until an agent has signed in.
func (a *App) requireAgent(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.currentAgent() == "" {
			writeError(w, http.StatusForbidden, msgLoginRequired)
			return
		}
		next(w, r)
	})
}

type loginRequest struct {
	Code string `json:"code"`
}

func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	code, err := a.agents.Format(req.Code)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	a.setAgent(code)
	observe.Logger(r.Context()).Info("agent signed in", "agent_code", code)
	writeJSON(w, http.StatusOK, map[string]string{"agentCode": code})
}

// formResponse is the full snapshot the UI renders from.
type formResponse struct {
	AgentCode string         `json:"agentCode"`
	Focus     string         `json:"focus"`
	Valid     bool           `json:"valid"`
	Sections  []form.Section `json:"sections"`
	Fields    []flow.View    `json:"fields"`
}

func (a *App) handleForm(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, formResponse{
		AgentCode: a.currentAgent(),
		Focus:     a.flow.Focus(),
		Valid:     a.state.Valid(),
		Sections:  a.state.Sections(),
		Fields:    a.flow.Views(),
	})
}

type captureRequest struct {
	// Action is "start", "stop" or "error".
	Action string `json:"action"`

	// Code carries the recognition error code when Action is "error".
	Code string `json:"code,omitempty"`
}

func (a *App) handleCapture(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Action {
	case "start":
		if err := a.flow.StartCapture(key); err != nil {
			writeFlowError(w, err)
			return
		}
	case "stop":
		a.flow.StopCapture(key)
	case "error":
		a.flow.HandleCaptureError(key, &speech.CaptureError{Code: speech.ErrorCode(req.Code)})
	default:
		writeError(w, http.StatusBadRequest, "unknown capture action")
		return
	}
	a.writeFieldView(w, key)
}

type transcriptRequest struct {
	Alternatives []speechAlternative `json:"alternatives"`
}

type speechAlternative struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

func (a *App) handleTranscript(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	var req transcriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	utt := speech.Utterance{Alternatives: make([]speech.Alternative, 0, len(req.Alternatives))}
	for _, alt := range req.Alternatives {
		utt.Alternatives = append(utt.Alternatives, speech.Alternative{
			Text:       alt.Text,
			Confidence: alt.Confidence,
		})
	}

	if err := a.flow.AcceptTranscript(key, utt); err != nil {
		writeFlowError(w, err)
		return
	}
	a.writeFieldView(w, key)
}

type valueRequest struct {
	Value string `json:"value"`

	// Commit validates and closes the field, mirroring an input blur.
	Commit bool `json:"commit,omitempty"`
}

func (a *App) handleValue(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	var req valueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := a.flow.SetManual(key, req.Value); err != nil {
		writeFlowError(w, err)
		return
	}
	if req.Commit {
		if err := a.flow.Blur(key); err != nil {
			writeFlowError(w, err)
			return
		}
	}
	a.writeFieldView(w, key)
}

func (a *App) handleEdit(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if err := a.flow.Edit(key); err != nil {
		writeFlowError(w, err)
		return
	}
	a.writeFieldView(w, key)
}

func (a *App) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !a.state.Valid() {
		a.metrics.RecordWebhookSubmission(ctx, "incomplete")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  msgFormIncomplete,
			"fields": a.state.FieldErrors(),
		})
		return
	}

	err := a.hooks.Submit(ctx, a.currentAgent(), a.state.Values())
	var statusErr *webhook.StatusError
	switch {
	case errors.As(err, &statusErr):
		a.metrics.RecordWebhookSubmission(ctx, "rejected")
		writeError(w, http.StatusBadGateway, msgWebhookFailed)
	case err != nil:
		a.metrics.RecordWebhookSubmission(ctx, "error")
		writeError(w, http.StatusBadGateway, msgWebhookFailed)
	default:
		a.metrics.RecordWebhookSubmission(ctx, "ok")
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (a *App) writeFieldView(w http.ResponseWriter, key string) {
	view, err := a.flow.FieldView(key)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// writeFlowError maps controller sentinels onto HTTP statuses.
func writeFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, flow.ErrUnknownField):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, flow.ErrCaptureBusy):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, flow.ErrEmptyUtterance):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
