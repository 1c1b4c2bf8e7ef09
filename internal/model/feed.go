package model

import (
	"context"
	"time"
)

// FeedRefreshInterval is how long a cached image or quote of the day stays
// current before a new one is fetched.
const FeedRefreshInterval = 24 * time.Hour

// ImageStore caches the image of the day.
type ImageStore interface {
	Get(ctx context.Context) (ImageOfTheDay, error)
	Save(ctx context.Context, img ImageOfTheDay) (ImageOfTheDay, error)
	Replace(ctx context.Context, oldURL string, img ImageOfTheDay) (ImageOfTheDay, error)
}

// QuoteStore persists submitted quotes and tracks which one is the quote of
// the day.
type QuoteStore interface {
	Count(ctx context.Context) (int, error)
	Add(ctx context.Context, quote Quote) (Quote, error)
	GetQuoteOfTheDay(ctx context.Context) (Quote, error)
	SetQuoteOfTheDay(ctx context.Context, index int) (Quote, error)
}

// FeedClient fetches fresh content from the external image and quote APIs.
type FeedClient interface {
	FetchImage(ctx context.Context) (ImageOfTheDay, error)
	FetchQuote(ctx context.Context) (Quote, error)
}

// ImageOfTheDay holds the displayed image and its attribution. UpdatedAt
// decides when a day has passed and a new image may be fetched.
type ImageOfTheDay struct {
	URL          string
	Title        string
	Photographer string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Quote is a stored quote. Index orders quotes for the daily rotation;
// Current marks the quote being displayed today.
type Quote struct {
	Index       int
	Quote       string
	Author      string
	Recommender string
	Current     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
