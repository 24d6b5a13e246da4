// Package api provides HTTP handlers for the forumhub REST API.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/coregx/forumhub/auth"
	"github.com/coregx/forumhub/model"
)

// TopicService is the topic API consumed by the handlers.
type TopicService interface {
	Create(ctx context.Context, p auth.Principal, req model.CreateTopicRequest) (model.TopicDetail, error)
	List(ctx context.Context, req model.PageRequest) (model.Page[model.TopicListItem], error)
	Detail(ctx context.Context, id int64) (model.TopicDetail, error)
	Update(ctx context.Context, id int64, req model.UpdateTopicRequest) (model.TopicDetail, error)
	Delete(ctx context.Context, id int64) error
}

// Authenticator issues and checks bearer tokens.
type Authenticator interface {
	Login(ctx context.Context, login, password string) (auth.Token, error)
	Authenticate(token string) (auth.Principal, error)
}

// Handler holds dependencies for API handlers.
type Handler struct {
	topics  TopicService
	authn   Authenticator
	logger  *zap.Logger
	version string
}

// NewHandler creates a new API handler.
func NewHandler(topics TopicService, authn Authenticator, logger *zap.Logger, version string) *Handler {
	return &Handler{
		topics:  topics,
		authn:   authn,
		logger:  logger,
		version: version,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"senha"`
}

// TokenResponse represents an issued bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	Type      string    `json:"tipo"`
	ExpiresAt time.Time `json:"expiraEm"`
}

// HandleLogin handles POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.authn.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, TokenResponse{
		Token:     token.Value,
		Type:      "Bearer",
		ExpiresAt: token.ExpiresAt.UTC(),
	})
}

// HandleCreateTopic handles POST /topicos
func (h *Handler) HandleCreateTopic(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFrom(r.Context())
	if err != nil {
		respondUnauthorized(w, "authentication required")
		return
	}

	var req model.CreateTopicRequest
	if !h.decode(w, r, &req) {
		return
	}

	topic, err := h.topics.Create(r.Context(), principal, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/topicos/"+strconv.FormatInt(topic.ID, 10))
	respondJSON(w, http.StatusCreated, topic)
}

// HandleListTopics handles GET /topicos?page=&size=&sort=field,dir
func (h *Handler) HandleListTopics(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), CodeValidation)
		return
	}

	page, err := h.topics.List(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// HandleGetTopic handles GET /topicos/{id}
func (h *Handler) HandleGetTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := topicID(w, r)
	if !ok {
		return
	}

	topic, err := h.topics.Detail(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, topic)
}

// HandleUpdateTopic handles PUT /topicos/{id}
func (h *Handler) HandleUpdateTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := topicID(w, r)
	if !ok {
		return
	}

	var req model.UpdateTopicRequest
	if !h.decode(w, r, &req) {
		return
	}

	topic, err := h.topics.Update(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, topic)
}

// HandleDeleteTopic handles DELETE /topicos/{id}
func (h *Handler) HandleDeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := topicID(w, r)
	if !ok {
		return
	}

	if err := h.topics.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles GET /health
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   h.version,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Debug("Invalid request body", zap.Error(err), zap.String("path", r.URL.Path))
		respondError(w, http.StatusBadRequest, "Invalid JSON", CodeInvalidJSON)
		return false
	}
	return true
}

func topicID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid topic ID", CodeValidation)
		return 0, false
	}
	return id, true
}
