package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
)

// Feed serves the cached image and quote of the day, refetching from the
// external APIs once the cached entry is a day old.
type Feed struct {
	images model.ImageStore
	quotes model.QuoteStore
	client model.FeedClient
	logger *logger.Logger
}

// NewFeed creates the feed service.
func NewFeed(images model.ImageStore, quotes model.QuoteStore, client model.FeedClient, logger *logger.Logger) *Feed {
	return &Feed{images: images, quotes: quotes, client: client, logger: logger}
}

// GetImage returns the image of the day, fetching and caching it when the
// cache is empty or stale. A stale cache entry is replaced only when the
// external API actually serves a different image.
func (s *Feed) GetImage(ctx context.Context) (model.ImageOfTheDay, error) {
	img, err := s.images.Get(ctx)
	if errors.Is(err, model.ErrNotFound) {
		fetched, err := s.client.FetchImage(ctx)
		if err != nil {
			return model.ImageOfTheDay{}, fmt.Errorf("failed to fetch image of the day: %w", err)
		}
		return s.images.Save(ctx, fetched)
	}
	if err != nil {
		return model.ImageOfTheDay{}, fmt.Errorf("failed to get image of the day: %w", err)
	}

	if time.Since(img.UpdatedAt) > model.FeedRefreshInterval {
		fetched, err := s.client.FetchImage(ctx)
		if err != nil {
			s.logger.Error("Feed service: image refresh failed, serving cached", "error", err.Error())
			return img, nil
		}
		if fetched.URL != img.URL {
			return s.images.Replace(ctx, img.URL, fetched)
		}
	}

	return img, nil
}

// GetQuote returns the quote of the day. Stored quotes rotate daily by
// index; when none are stored yet the external API seeds the first one.
func (s *Feed) GetQuote(ctx context.Context) (model.Quote, error) {
	quote, err := s.quotes.GetQuoteOfTheDay(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return s.pickQuote(ctx)
	}
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to get quote of the day: %w", err)
	}

	if time.Since(quote.UpdatedAt) > model.FeedRefreshInterval {
		count, err := s.quotes.Count(ctx)
		if err != nil {
			return model.Quote{}, fmt.Errorf("failed to count quotes: %w", err)
		}
		next := (quote.Index + 1) % count
		return s.quotes.SetQuoteOfTheDay(ctx, next)
	}

	return quote, nil
}

// AddQuote stores a submitted quote at the end of the rotation.
func (s *Feed) AddQuote(ctx context.Context, identity model.Identity, text, author string) (model.Quote, error) {
	count, err := s.quotes.Count(ctx)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to count quotes: %w", err)
	}

	quote, err := s.quotes.Add(ctx, model.Quote{
		Index:       count,
		Quote:       text,
		Author:      author,
		Recommender: identity.Email,
	})
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to add quote: %w", err)
	}

	s.logger.Info("Feed service: quote added", "index", quote.Index, "recommender", identity.Email)

	return quote, nil
}

// pickQuote seeds the rotation when the store holds no current quote.
func (s *Feed) pickQuote(ctx context.Context) (model.Quote, error) {
	count, err := s.quotes.Count(ctx)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to count quotes: %w", err)
	}

	if count > 0 {
		return s.quotes.SetQuoteOfTheDay(ctx, 0)
	}

	fetched, err := s.client.FetchQuote(ctx)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to fetch quote of the day: %w", err)
	}

	quote, err := s.quotes.Add(ctx, fetched)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to store fetched quote: %w", err)
	}

	return s.quotes.SetQuoteOfTheDay(ctx, quote.Index)
}
