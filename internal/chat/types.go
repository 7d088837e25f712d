package chat

import "github.com/adityaraj161616/campus-chatbot-go/internal/flow"

// Request is one inbound chat turn.
// SessionID is empty on the first turn; the server assigns one.
// Language is optional and switches the session language when present.
type Request struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
	Language  string `json:"language"`
}

// TranslationInfo reports how the reply text was localized. Method is one
// of "ai", "glossary", "stored" (pre-localized from stored translations,
// never entered the fallback chain) or "passthrough". Success is false when
// every translation method failed and the reply fell back to English.
type TranslationInfo struct {
	Success  bool   `json:"success"`
	Method   string `json:"method"`
	Language string `json:"language"`
}

// Response is the reply to one chat turn.
type Response struct {
	SessionID        string          `json:"session_id"`
	Message          string          `json:"message"`
	Options          []flow.Option   `json:"options,omitempty"`
	RequiresNextStep bool            `json:"requires_next_step"`
	CurrentStep      string          `json:"current_step,omitempty"`
	Translation      TranslationInfo `json:"translation"`
}

// errorResponse is the body for rejected requests.
type errorResponse struct {
	Error string `json:"error"`
}
