package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/alexanderramin/faqbot/internal/service"
)

// maxBodyBytes caps request bodies; questions are short.
const maxBodyBytes = 64 << 10

type handler struct {
	conversation service.ConversationService
	logger       *observability.Logger
}

// AskRequestDTO is the body of POST /api/v1/ask.
type AskRequestDTO struct {
	Question string `json:"question"`
}

// AskResponseDTO is the reply to one question.
type AskResponseDTO struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
	// FeedbackWanted is true for direct answers only.
	FeedbackWanted bool `json:"feedback_wanted"`
}

// FeedbackRequestDTO is the body of POST /api/v1/feedback.
type FeedbackRequestDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Helpful  *bool  `json:"helpful"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "faqbot"})
}

// ask handles POST /api/v1/ask.
func (h *handler) ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequestDTO
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required", "")
		return
	}

	reply := h.conversation.Ask(r.Context(), req.Question)
	writeJSON(w, http.StatusOK, AskResponseDTO{
		Kind:           string(reply.Kind),
		Text:           reply.Text,
		Options:        reply.Options,
		FeedbackWanted: reply.WantsFeedback(),
	})
}

// feedback handles POST /api/v1/feedback.
func (h *handler) feedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequestDTO
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Helpful == nil {
		writeError(w, http.StatusBadRequest, "helpful is required", "")
		return
	}

	err := h.conversation.RecordFeedback(r.Context(), req.Question, req.Answer, *req.Helpful)
	if errors.Is(err, service.ErrEmptyFeedback) {
		writeError(w, http.StatusBadRequest, "question and answer are required", "")
		return
	}
	if errors.Is(err, service.ErrInvalidFeedback) {
		writeError(w, http.StatusBadRequest, "invalid feedback", err.Error())
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("feedback failed")
		writeError(w, http.StatusInternalServerError, "feedback failed", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	resp := map[string]string{"error": message}
	if detail != "" {
		resp["detail"] = detail
	}
	writeJSON(w, status, resp)
}
