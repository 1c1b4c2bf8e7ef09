package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dayboard/dayboard-server/internal/mocks"
	"github.com/dayboard/dayboard-server/internal/model"
	"github.com/dayboard/dayboard-server/internal/testutil"
)

type feedFixture struct {
	images *mocks.ImageStore
	quotes *mocks.QuoteStore
	client *mocks.FeedClient
	feed   *Feed
}

func newFeedFixture() *feedFixture {
	f := &feedFixture{
		images: &mocks.ImageStore{},
		quotes: &mocks.QuoteStore{},
		client: &mocks.FeedClient{},
	}
	f.feed = NewFeed(f.images, f.quotes, f.client, testutil.MakeNoopLogger())
	return f
}

func TestFeed_GetImage_CacheMiss(t *testing.T) {
	f := newFeedFixture()
	fetched := model.ImageOfTheDay{URL: "https://img/new.jpg", Title: "New"}

	f.images.On("Get", mock.Anything).Return(model.ImageOfTheDay{}, model.ErrNotFound)
	f.client.On("FetchImage", mock.Anything).Return(fetched, nil)
	f.images.On("Save", mock.Anything, fetched).Return(fetched, nil)

	img, err := f.feed.GetImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://img/new.jpg", img.URL)
}

func TestFeed_GetImage_Fresh(t *testing.T) {
	f := newFeedFixture()
	cached := model.ImageOfTheDay{URL: "https://img/today.jpg", UpdatedAt: time.Now()}

	f.images.On("Get", mock.Anything).Return(cached, nil)

	img, err := f.feed.GetImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached.URL, img.URL)

	f.client.AssertNotCalled(t, "FetchImage", mock.Anything)
}

func TestFeed_GetImage_StaleReplaced(t *testing.T) {
	f := newFeedFixture()
	cached := model.ImageOfTheDay{URL: "https://img/old.jpg", UpdatedAt: time.Now().Add(-25 * time.Hour)}
	fetched := model.ImageOfTheDay{URL: "https://img/new.jpg"}

	f.images.On("Get", mock.Anything).Return(cached, nil)
	f.client.On("FetchImage", mock.Anything).Return(fetched, nil)
	f.images.On("Replace", mock.Anything, "https://img/old.jpg", fetched).Return(fetched, nil)

	img, err := f.feed.GetImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://img/new.jpg", img.URL)
}

func TestFeed_GetImage_StaleSameURL(t *testing.T) {
	f := newFeedFixture()
	cached := model.ImageOfTheDay{URL: "https://img/same.jpg", UpdatedAt: time.Now().Add(-25 * time.Hour)}

	f.images.On("Get", mock.Anything).Return(cached, nil)
	f.client.On("FetchImage", mock.Anything).Return(model.ImageOfTheDay{URL: "https://img/same.jpg"}, nil)

	img, err := f.feed.GetImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached.URL, img.URL)

	f.images.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func TestFeed_GetImage_RefreshFailureServesCached(t *testing.T) {
	f := newFeedFixture()
	cached := model.ImageOfTheDay{URL: "https://img/old.jpg", UpdatedAt: time.Now().Add(-25 * time.Hour)}

	f.images.On("Get", mock.Anything).Return(cached, nil)
	f.client.On("FetchImage", mock.Anything).Return(model.ImageOfTheDay{}, errors.New("api down"))

	img, err := f.feed.GetImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached.URL, img.URL)
}

func TestFeed_GetQuote_Fresh(t *testing.T) {
	f := newFeedFixture()
	current := model.Quote{Index: 2, Quote: "stay hungry", Current: true, UpdatedAt: time.Now()}

	f.quotes.On("GetQuoteOfTheDay", mock.Anything).Return(current, nil)

	quote, err := f.feed.GetQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stay hungry", quote.Quote)
}

func TestFeed_GetQuote_StaleRotates(t *testing.T) {
	f := newFeedFixture()
	current := model.Quote{Index: 2, Current: true, UpdatedAt: time.Now().Add(-25 * time.Hour)}
	next := model.Quote{Index: 0, Quote: "next up", Current: true}

	f.quotes.On("GetQuoteOfTheDay", mock.Anything).Return(current, nil)
	f.quotes.On("Count", mock.Anything).Return(3, nil)
	// Rotation wraps: after the last index comes the first.
	f.quotes.On("SetQuoteOfTheDay", mock.Anything, 0).Return(next, nil)

	quote, err := f.feed.GetQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "next up", quote.Quote)
}

func TestFeed_GetQuote_SeedsFromStore(t *testing.T) {
	f := newFeedFixture()
	first := model.Quote{Index: 0, Quote: "first", Current: true}

	f.quotes.On("GetQuoteOfTheDay", mock.Anything).Return(model.Quote{}, model.ErrNotFound)
	f.quotes.On("Count", mock.Anything).Return(2, nil)
	f.quotes.On("SetQuoteOfTheDay", mock.Anything, 0).Return(first, nil)

	quote, err := f.feed.GetQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", quote.Quote)

	f.client.AssertNotCalled(t, "FetchQuote", mock.Anything)
}

func TestFeed_GetQuote_SeedsFromAPI(t *testing.T) {
	f := newFeedFixture()
	fetched := model.Quote{Quote: "from api", Author: "someone"}
	stored := model.Quote{Index: 0, Quote: "from api", Author: "someone"}

	f.quotes.On("GetQuoteOfTheDay", mock.Anything).Return(model.Quote{}, model.ErrNotFound)
	f.quotes.On("Count", mock.Anything).Return(0, nil)
	f.client.On("FetchQuote", mock.Anything).Return(fetched, nil)
	f.quotes.On("Add", mock.Anything, fetched).Return(stored, nil)
	f.quotes.On("SetQuoteOfTheDay", mock.Anything, 0).Return(stored, nil)

	quote, err := f.feed.GetQuote(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from api", quote.Quote)
}

func TestFeed_AddQuote(t *testing.T) {
	f := newFeedFixture()

	f.quotes.On("Count", mock.Anything).Return(4, nil)
	f.quotes.On("Add", mock.Anything, mock.MatchedBy(func(q model.Quote) bool {
		return q.Index == 4 && q.Quote == "new quote" && q.Recommender == "a@b.co"
	})).Return(model.Quote{Index: 4, Quote: "new quote", Recommender: "a@b.co"}, nil)

	quote, err := f.feed.AddQuote(context.Background(), model.Identity{Email: "a@b.co"}, "new quote", "me")
	require.NoError(t, err)
	assert.Equal(t, 4, quote.Index)
}
