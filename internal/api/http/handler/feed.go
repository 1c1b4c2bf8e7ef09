package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
)

// FeedService defines the daily image and quote operations.
type FeedService interface {
	GetImage(ctx context.Context) (model.ImageOfTheDay, error)
	GetQuote(ctx context.Context) (model.Quote, error)
	AddQuote(ctx context.Context, identity model.Identity, text, author string) (model.Quote, error)
}

// Feed handles the HTTP endpoints for the daily image and quote.
type Feed struct {
	feedService    FeedService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewFeed creates a new Feed handler.
func NewFeed(feedService FeedService, contextManager model.ContextManager, logger *logger.Logger) *Feed {
	return &Feed{
		feedService:    feedService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type imageResponse struct {
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Photographer string    `json:"photographer,omitempty"`
	Description  string    `json:"description,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type quoteResponse struct {
	Quote       string `json:"quote"`
	Author      string `json:"author,omitempty"`
	Recommender string `json:"recommender,omitempty"`
}

type addQuoteRequest struct {
	Quote  string `json:"quote"`
	Author string `json:"author,omitempty"`
}

// GetImage handles GET /feed/image.
func (h *Feed) GetImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.feedService.GetImage(r.Context())
	if err != nil {
		h.logger.Error("Feed handler: get image failed", "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, imageResponse{
		URL:          img.URL,
		Title:        img.Title,
		Photographer: img.Photographer,
		Description:  img.Description,
		UpdatedAt:    img.UpdatedAt,
	})
}

// GetQuote handles GET /feed/quote.
func (h *Feed) GetQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.feedService.GetQuote(r.Context())
	if err != nil {
		h.logger.Error("Feed handler: get quote failed", "error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		Quote:       quote.Quote,
		Author:      quote.Author,
		Recommender: quote.Recommender,
	})
}

// AddQuote handles POST /feed/quotes.
func (h *Feed) AddQuote(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	var req addQuoteRequest
	if err := decodeJSON(r, &req); err != nil || req.Quote == "" {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	quote, err := h.feedService.AddQuote(r.Context(), identity, req.Quote, req.Author)
	if err != nil {
		h.logger.Error("Feed handler: add quote failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, quoteResponse{
		Quote:       quote.Quote,
		Author:      quote.Author,
		Recommender: quote.Recommender,
	})
}
