package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dayboard/dayboard-server/internal/model"
)

var (
	_ model.ImageStore = (*FeedRepository)(nil)
	_ model.QuoteStore = (*FeedRepository)(nil)
)

// FeedRepository caches the image of the day and holds the quote rotation.
// The image table holds at most one row.
type FeedRepository struct {
	db *Connection
}

func NewFeedRepository(db *Connection) *FeedRepository {
	return &FeedRepository{
		db: db,
	}
}

const imageColumns = `url, title, photographer, description, created_at, updated_at`

func (r *FeedRepository) Get(ctx context.Context) (model.ImageOfTheDay, error) {
	var img model.ImageOfTheDay
	query := `SELECT ` + imageColumns + ` FROM image_of_the_day LIMIT 1`

	err := r.db.QueryRow(ctx, query).Scan(
		&img.URL, &img.Title, &img.Photographer, &img.Description, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ImageOfTheDay{}, model.ErrNotFound
		}
		return model.ImageOfTheDay{}, fmt.Errorf("failed to get image of the day: %w", err)
	}

	return img, nil
}

func (r *FeedRepository) Save(ctx context.Context, img model.ImageOfTheDay) (model.ImageOfTheDay, error) {
	query := `INSERT INTO image_of_the_day (url, title, photographer, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING ` + imageColumns

	var saved model.ImageOfTheDay
	err := r.db.QueryRow(ctx, query, img.URL, img.Title, img.Photographer, img.Description).Scan(
		&saved.URL, &saved.Title, &saved.Photographer, &saved.Description, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.ImageOfTheDay{}, fmt.Errorf("failed to save image of the day: %w", err)
	}

	return saved, nil
}

func (r *FeedRepository) Replace(ctx context.Context, oldURL string, img model.ImageOfTheDay) (model.ImageOfTheDay, error) {
	query := `UPDATE image_of_the_day
			  SET url = $2, title = $3, photographer = $4, description = $5, updated_at = NOW()
			  WHERE url = $1
			  RETURNING ` + imageColumns

	var saved model.ImageOfTheDay
	err := r.db.QueryRow(ctx, query, oldURL, img.URL, img.Title, img.Photographer, img.Description).Scan(
		&saved.URL, &saved.Title, &saved.Photographer, &saved.Description, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ImageOfTheDay{}, model.ErrNotFound
		}
		return model.ImageOfTheDay{}, fmt.Errorf("failed to replace image of the day: %w", err)
	}

	return saved, nil
}

const quoteColumns = `index, quote, author, recommender, current, created_at, updated_at`

func (r *FeedRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return count, nil
}

func (r *FeedRepository) Add(ctx context.Context, quote model.Quote) (model.Quote, error) {
	query := `INSERT INTO quotes (index, quote, author, recommender, current, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING ` + quoteColumns

	var saved model.Quote
	err := r.db.QueryRow(ctx, query,
		quote.Index, quote.Quote, quote.Author, quote.Recommender, quote.Current,
	).Scan(
		&saved.Index, &saved.Quote, &saved.Author, &saved.Recommender,
		&saved.Current, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to add quote: %w", err)
	}

	return saved, nil
}

func (r *FeedRepository) GetQuoteOfTheDay(ctx context.Context) (model.Quote, error) {
	var quote model.Quote
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE current`

	err := r.db.QueryRow(ctx, query).Scan(
		&quote.Index, &quote.Quote, &quote.Author, &quote.Recommender,
		&quote.Current, &quote.CreatedAt, &quote.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Quote{}, model.ErrNotFound
		}
		return model.Quote{}, fmt.Errorf("failed to get quote of the day: %w", err)
	}

	return quote, nil
}

// SetQuoteOfTheDay moves the current flag to the quote at index.
func (r *FeedRepository) SetQuoteOfTheDay(ctx context.Context, index int) (model.Quote, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `UPDATE quotes SET current = FALSE WHERE current`); err != nil {
		return model.Quote{}, fmt.Errorf("failed to clear current quote: %w", err)
	}

	query := `UPDATE quotes SET current = TRUE, updated_at = NOW() WHERE index = $1
			  RETURNING ` + quoteColumns

	var quote model.Quote
	err = tx.QueryRow(ctx, query, index).Scan(
		&quote.Index, &quote.Quote, &quote.Author, &quote.Recommender,
		&quote.Current, &quote.CreatedAt, &quote.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Quote{}, model.ErrNotFound
		}
		return model.Quote{}, fmt.Errorf("failed to set quote of the day: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Quote{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return quote, nil
}
