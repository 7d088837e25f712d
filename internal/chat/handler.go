// Package chat exposes the HTTP chat endpoint. Each turn loads the session's
// dialogue state, routes the message through the flow controller, localizes
// the reply, and persists the mutated state in a single version-guarded write.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adityaraj161616/campus-chatbot-go/internal/config"
	"github.com/adityaraj161616/campus-chatbot-go/internal/ctxutil"
	apperrors "github.com/adityaraj161616/campus-chatbot-go/internal/errors"
	"github.com/adityaraj161616/campus-chatbot-go/internal/flow"
	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/intent"
	"github.com/adityaraj161616/campus-chatbot-go/internal/metrics"
	"github.com/adityaraj161616/campus-chatbot-go/internal/ratelimit"
	"github.com/adityaraj161616/campus-chatbot-go/internal/sentry"
	"github.com/adityaraj161616/campus-chatbot-go/internal/session"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
	"github.com/adityaraj161616/campus-chatbot-go/internal/translate"
)

// Handler serves the chat endpoint.
type Handler struct {
	cfg        config.ChatConfig
	sessions   storage.SessionRepository
	controller *flow.Controller
	translator *translate.Service
	limiter    *ratelimit.ChatLimiter
	aiQuota    *ratelimit.TranslationLimiter
	metrics    *metrics.Metrics
}

// NewHandler wires the chat endpoint. limiter, aiQuota and m may be nil,
// which disables rate limiting and metrics (used in tests).
func NewHandler(
	cfg config.ChatConfig,
	sessions storage.SessionRepository,
	controller *flow.Controller,
	translator *translate.Service,
	limiter *ratelimit.ChatLimiter,
	aiQuota *ratelimit.TranslationLimiter,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		cfg:        cfg,
		sessions:   sessions,
		controller: controller,
		translator: translator,
		limiter:    limiter,
		aiQuota:    aiQuota,
		metrics:    m,
	}
}

// HandleChat processes one chat turn.
func (h *Handler) HandleChat(c *gin.Context) {
	start := time.Now()

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject("invalid_json")
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	message := req.Message
	if strings.TrimSpace(message) == "" {
		h.reject("empty")
		c.JSON(http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}
	if utf8.RuneCountInString(message) > h.cfg.MaxMessageLength {
		h.reject("too_long")
		c.JSON(http.StatusBadRequest, errorResponse{Error: "message too long"})
		return
	}

	sessionID := req.SessionID
	isNew := sessionID == ""
	if isNew {
		sessionID = uuid.NewString()
	}

	if h.limiter != nil && !h.limiter.Allow(sessionID) {
		h.reject("rate_limited")
		c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many requests, please slow down"})
		return
	}

	ctx := ctxutil.WithSessionID(c.Request.Context(), sessionID)
	ctx, cancel := context.WithTimeout(ctx, h.cfg.TurnTimeout)
	defer cancel()

	state, err := h.loadState(ctx, sessionID, isNew, req.Language)
	if err != nil {
		// Store unreachable is fatal for the turn, but the user still gets
		// a conversational reply in their language.
		h.turnFallback(ctx, c, sessionID, i18n.Parse(req.Language), err, "session load failed")
		return
	}
	ctx = ctxutil.WithLanguage(ctx, state.Language.String())

	detected := h.detectIntent(ctx, sessionID, state, message)

	reply, err := h.controller.HandleTurn(ctx, state, message, detected)
	if err != nil {
		slog.ErrorContext(ctx, "chat turn failed",
			"intent", detected,
			"error", err)
		sentry.CaptureExceptionWithContext(ctx, err)
		h.recordTurn(detected, state, "error", start)
		c.JSON(http.StatusOK, Response{
			SessionID:   sessionID,
			Message:     flow.Fallback(state.Language),
			Translation: h.passthroughInfo(state.Language),
		})
		return
	}

	msgResult := h.localize(ctx, sessionID, reply.Message, state.Language)
	options := h.localizeOptions(ctx, sessionID, reply.Options, state.Language)
	if len(options) > h.cfg.MaxOptions {
		options = options[:h.cfg.MaxOptions]
	}

	if err := h.persist(ctx, state); err != nil {
		if apperrors.IsVersionConflict(err) {
			// A concurrent turn for this session won the write. Its reply
			// supersedes ours, so ask the user to continue from there.
			if h.metrics != nil {
				h.metrics.RecordVersionConflict()
			}
			c.JSON(http.StatusConflict, errorResponse{Error: "another message for this session is being processed"})
			return
		}
		// The reply was computed but its state never committed; answering
		// with it would desync the conversation, so fall back instead.
		h.turnFallback(ctx, c, sessionID, state.Language, err, "session write failed")
		return
	}

	h.recordTurn(detected, state, "success", start)

	resp := Response{
		SessionID:        sessionID,
		Message:          msgResult.Text,
		Options:          options,
		RequiresNextStep: reply.RequiresNextStep,
		Translation: TranslationInfo{
			Success:  msgResult.Success,
			Method:   string(msgResult.Method),
			Language: msgResult.Language.String(),
		},
	}
	if state.InFlow() {
		resp.CurrentStep = string(state.AwaitingStep)
	}
	c.JSON(http.StatusOK, resp)
}

// loadState fetches or creates the session state. A stored session that
// expired between turns is transparently recreated under the same ID. An
// explicit language in the request switches the session language.
func (h *Handler) loadState(ctx context.Context, sessionID string, isNew bool, language string) (*session.State, error) {
	if isNew {
		state := session.New(sessionID, i18n.Parse(language))
		if err := h.sessions.CreateSession(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}

	state, err := h.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		state = session.New(sessionID, i18n.Parse(language))
		if err := h.sessions.CreateSession(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}
	if err != nil {
		return nil, err
	}

	if language != "" {
		state.Language = i18n.Parse(language)
	}
	return state, nil
}

// detectIntent runs keyword detection on the raw message. When nothing
// matches for a non-English session, the message is translated to English
// once (within the session's AI quota) and detection runs again.
func (h *Handler) detectIntent(ctx context.Context, sessionID string, state *session.State, message string) intent.Intent {
	if match, ok := intent.Detect(message, ""); ok {
		slog.DebugContext(ctx, "intent detected",
			"intent", match.Intent,
			"keyword", match.Keyword)
		return match.Intent
	}

	if state.Language == i18n.English || h.translator == nil {
		return ""
	}
	if h.aiQuota != nil && !h.aiQuota.Allow(sessionID) {
		return ""
	}

	translated := h.translator.Input(ctx, message, state.Language)
	if translated == message {
		return ""
	}
	if match, ok := intent.Detect(translated, ""); ok {
		slog.DebugContext(ctx, "intent detected after input translation",
			"intent", match.Intent)
		return match.Intent
	}
	return ""
}

// localize finalizes the reply text for the session language.
//
// Flow replies are already localized from stored translations, which
// ContainsScript detects. Text still in English means the stored data had no
// translation, so it goes through the AI/glossary/passthrough chain, gated by
// the session's AI quota.
func (h *Handler) localize(ctx context.Context, sessionID, text string, lang i18n.Language) translate.Result {
	if lang == i18n.English || text == "" {
		return translate.Result{Text: text, Method: translate.MethodPassthrough, Language: i18n.English, Success: true}
	}
	if i18n.ContainsScript(text, lang) {
		return translate.Result{Text: text, Method: translate.MethodStored, Language: lang, Success: true}
	}
	if h.translator == nil {
		return translate.Result{Text: text, Method: translate.MethodPassthrough, Language: i18n.English, Success: false}
	}
	if h.aiQuota != nil && !h.aiQuota.Allow(sessionID) {
		return h.translator.Glossary(ctx, text, lang)
	}
	return h.translator.Response(ctx, text, lang)
}

// localizeOptions translates option labels that the flow could not localize
// from stored data. Already-localized labels pass through untouched. Values
// are never translated: they are machine codes the next step resolves by
// exact or normalized match, and a translated value would break that lookup.
func (h *Handler) localizeOptions(ctx context.Context, sessionID string, opts []flow.Option, lang i18n.Language) []flow.Option {
	if lang == i18n.English || len(opts) == 0 || h.translator == nil {
		return opts
	}

	var pendingIdx []int
	var pendingTexts []string
	for i, o := range opts {
		if !i18n.ContainsScript(o.Label, lang) {
			pendingIdx = append(pendingIdx, i)
			pendingTexts = append(pendingTexts, o.Label)
		}
	}
	if len(pendingTexts) == 0 {
		return opts
	}

	var results []translate.Result
	if h.aiQuota != nil && !h.aiQuota.Allow(sessionID) {
		results = make([]translate.Result, len(pendingTexts))
		for i, t := range pendingTexts {
			results[i] = h.translator.Glossary(ctx, t, lang)
		}
	} else {
		results = h.translator.Texts(ctx, pendingTexts, lang)
	}

	out := make([]flow.Option, len(opts))
	copy(out, opts)
	for j, i := range pendingIdx {
		out[i].Label = results[j].Text
	}
	return out
}

// persist writes the mutated state back under its version guard. The flow
// fields and the answer for this turn commit together or not at all.
func (h *Handler) persist(ctx context.Context, state *session.State) error {
	err := h.sessions.UpdateSession(ctx, state)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		// Cleanup deleted the session mid-turn; recreate it with the
		// current state.
		return h.sessions.CreateSession(ctx, state)
	}
	return err
}

func (h *Handler) passthroughInfo(lang i18n.Language) TranslationInfo {
	info := TranslationInfo{Success: true, Method: string(translate.MethodPassthrough), Language: lang.String()}
	if lang != i18n.English {
		// Catalog fallback text is pre-localized for every supported language.
		info.Method = string(translate.MethodStored)
	}
	return info
}

// turnFallback ends the turn with the static fallback message after a store
// failure. The error is logged and reported, the user never sees it.
func (h *Handler) turnFallback(ctx context.Context, c *gin.Context, sessionID string, lang i18n.Language, err error, msg string) {
	slog.ErrorContext(ctx, msg, "error", err)
	sentry.CaptureExceptionWithContext(ctx, err)
	if h.metrics != nil {
		h.metrics.RecordHTTPError("storage", "chat")
	}
	c.JSON(http.StatusOK, Response{
		SessionID:   sessionID,
		Message:     flow.Fallback(lang),
		Translation: h.passthroughInfo(lang),
	})
}

func (h *Handler) reject(reason string) {
	if h.metrics != nil {
		h.metrics.RecordRejectedMessage(reason)
	}
}

func (h *Handler) recordTurn(detected intent.Intent, state *session.State, status string, start time.Time) {
	if h.metrics == nil {
		return
	}
	label := string(detected)
	if label == "" {
		if state.CurrentIntent != "" {
			label = string(state.CurrentIntent)
		} else {
			label = "none"
		}
	}
	h.metrics.RecordChatTurn(label, status, time.Since(start).Seconds())
}
