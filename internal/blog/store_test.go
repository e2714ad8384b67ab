package blog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// fakeStorage is a manual stub of Storage backed by a map
type fakeStorage struct {
	mu      sync.Mutex
	data    map[string]string
	getFunc func(ctx context.Context, key string) (string, bool, error)
	setFunc func(ctx context.Context, key, value string) error
	sets    int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string]string)}
}

func (f *fakeStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, key)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStorage) Set(ctx context.Context, key, value string) error {
	if f.setFunc != nil {
		return f.setFunc(ctx, key, value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.data[key] = value
	return nil
}

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T, storage Storage, seed []Post) *Store {
	t.Helper()
	store := NewStore(storage, noOpLogger(), Options{
		Seed: seed,
		Now:  func() time.Time { return day(20) },
	})
	store.Initialize(context.Background())
	return store
}

func postIDs(posts []Post) []int64 {
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestStore_Initialize(t *testing.T) {
	t.Run("EmptyStorageIsSeededAndPersisted", func(t *testing.T) {
		storage := newFakeStorage()
		store := newTestStore(t, storage, nil)

		page := store.List(CategoryAll, 1, 10)
		assert.Equal(t, []int64{1, 2, 3}, postIDs(page.Posts))

		var persisted []Post
		require.NoError(t, json.Unmarshal([]byte(storage.data[postsKey]), &persisted))
		assert.Len(t, persisted, 3)
	})

	t.Run("MalformedDataIsTreatedAsEmpty", func(t *testing.T) {
		storage := newFakeStorage()
		storage.data[postsKey] = "{not json"
		store := newTestStore(t, storage, nil)

		page := store.List(CategoryAll, 1, 10)
		assert.Equal(t, []int64{1, 2, 3}, postIDs(page.Posts))
	})

	t.Run("ReadFailureIsTreatedAsEmpty", func(t *testing.T) {
		storage := newFakeStorage()
		storage.getFunc = func(ctx context.Context, key string) (string, bool, error) {
			return "", false, errors.New("storage unavailable")
		}
		store := newTestStore(t, storage, nil)

		assert.Equal(t, 3, store.List(CategoryAll, 1, 10).Total)
	})

	t.Run("PersistedPostsAreLoadedWithoutSeeding", func(t *testing.T) {
		storage := newFakeStorage()
		data, err := json.Marshal([]Post{{ID: 42, Title: "kept", Date: day(1)}})
		require.NoError(t, err)
		storage.data[postsKey] = string(data)

		store := newTestStore(t, storage, nil)

		assert.Equal(t, []int64{42}, postIDs(store.List(CategoryAll, 1, 10).Posts))
		assert.Equal(t, 0, storage.sets)
	})

	t.Run("WriteFailureKeepsSeededPostsInMemory", func(t *testing.T) {
		storage := newFakeStorage()
		storage.setFunc = func(ctx context.Context, key, value string) error {
			return errors.New("quota exceeded")
		}
		store := newTestStore(t, storage, nil)

		assert.Equal(t, 3, store.List(CategoryAll, 1, 10).Total)
	})

	t.Run("SeedPostsWithoutAuthorGetConfiguredAuthor", func(t *testing.T) {
		store := NewStore(newFakeStorage(), noOpLogger(), Options{
			Seed: []Post{
				{ID: 1, Title: "anonymous", Date: day(1)},
				{ID: 2, Title: "signed", Author: "Priya Mehta", Date: day(2)},
			},
			DefaultAuthor: "Dana Whitfield",
			Now:           func() time.Time { return day(20) },
		})
		store.Initialize(context.Background())

		anonymous, err := store.Post(1)
		require.NoError(t, err)
		assert.Equal(t, "Dana Whitfield", anonymous.Author)

		signed, err := store.Post(2)
		require.NoError(t, err)
		assert.Equal(t, "Priya Mehta", signed.Author)
	})
}

func TestStore_List(t *testing.T) {
	seed := []Post{
		{ID: 1, Title: "old", Category: "case-studies", Date: day(5)},
		{ID: 2, Title: "mid", Category: "security-tips", Date: day(10)},
		{ID: 3, Title: "new", Category: "security-tips", Date: day(15)},
	}

	t.Run("PagesGrowAsPrefix", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), seed)

		page1 := store.List(CategoryAll, 1, 2)
		assert.Equal(t, []int64{3, 2}, postIDs(page1.Posts))
		assert.True(t, page1.HasMore)
		assert.Equal(t, 3, page1.Total)

		page2 := store.List(CategoryAll, 2, 2)
		assert.Equal(t, []int64{3, 2, 1}, postIDs(page2.Posts))
		assert.False(t, page2.HasMore)
		assert.Equal(t, page1.Posts, page2.Posts[:len(page1.Posts)])
	})

	t.Run("PageBeyondEndReturnsEverything", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), seed)

		page := store.List(CategoryAll, 100, 2)
		assert.Len(t, page.Posts, 3)
		assert.False(t, page.HasMore)
	})

	t.Run("InvalidPageAndSizeAreClamped", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), seed)

		page := store.List(CategoryAll, 0, 0)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 1, page.PageSize)
		assert.Equal(t, []int64{3}, postIDs(page.Posts))
	})

	t.Run("CategoryFilterIsExact", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), seed)

		tests := []struct {
			category string
			want     []int64
		}{
			{CategoryAll, []int64{3, 2, 1}},
			{"security-tips", []int64{3, 2}},
			{"case-studies", []int64{1}},
			{"Security-Tips", []int64{}},
			{"unknown", []int64{}},
		}

		for _, tt := range tests {
			t.Run(tt.category, func(t *testing.T) {
				page := store.List(tt.category, 1, 10)
				assert.Equal(t, tt.want, postIDs(page.Posts))
				for _, p := range page.Posts {
					if tt.category != CategoryAll {
						assert.Equal(t, tt.category, p.Category)
					}
				}
			})
		}
	})

	t.Run("EqualDatesKeepStoreOrder", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), []Post{
			{ID: 7, Date: day(1)},
			{ID: 8, Date: day(2)},
			{ID: 9, Date: day(1)},
			{ID: 10, Date: day(1)},
		})

		assert.Equal(t, []int64{8, 7, 9, 10}, postIDs(store.List(CategoryAll, 1, 10).Posts))
	})

	t.Run("ReturnedPostsAreCopies", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), []Post{{ID: 1, Tags: []string{"a"}, Date: day(1)}})

		page := store.List(CategoryAll, 1, 10)
		page.Posts[0].Tags[0] = "changed"

		p, err := store.Post(1)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, p.Tags)
	})
}

func TestStore_Create(t *testing.T) {
	t.Run("CreatedPostIsListedOnceWithFields", func(t *testing.T) {
		storage := newFakeStorage()
		store := newTestStore(t, storage, nil)

		post, err := store.Create(context.Background(), PostInput{
			Title:    "Phishing drills",
			Excerpt:  "Run them quarterly",
			Content:  "## Why\n\nBecause **people** click.",
			Category: "case-studies",
			Tags:     []string{"phishing, training", " ", "awareness"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Phishing drills", post.Title)
		assert.Equal(t, "Run them quarterly", post.Excerpt)
		assert.Equal(t, "case-studies", post.Category)
		assert.Equal(t, []string{"phishing", "training", "awareness"}, post.Tags)
		assert.Equal(t, DefaultAuthor, post.Author)
		assert.Equal(t, day(20), post.Date)
		assert.Equal(t, "1 min read", post.ReadTime)
		assert.False(t, post.Featured)

		page := store.List(CategoryAll, 1, 10)
		count := 0
		for _, p := range page.Posts {
			if p.ID == post.ID {
				count++
				assert.Equal(t, post, p)
			}
		}
		assert.Equal(t, 1, count)
		assert.Equal(t, post.ID, page.Posts[0].ID)

		var persisted []Post
		require.NoError(t, json.Unmarshal([]byte(storage.data[postsKey]), &persisted))
		require.Len(t, persisted, 4)
		assert.Equal(t, post.ID, persisted[0].ID)
	})

	t.Run("IDsAreUniqueAndIncreasing", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), nil)

		first, err := store.Create(context.Background(), PostInput{Title: "a", Content: "b"})
		require.NoError(t, err)
		second, err := store.Create(context.Background(), PostInput{Title: "c", Content: "d"})
		require.NoError(t, err)

		assert.Equal(t, day(20).UnixMilli(), first.ID)
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("MissingRequiredFieldsFailValidation", func(t *testing.T) {
		tests := []struct {
			name  string
			input PostInput
			field string
		}{
			{"EmptyTitle", PostInput{Content: "body"}, "title"},
			{"BlankTitle", PostInput{Title: "   ", Content: "body"}, "title"},
			{"EmptyContent", PostInput{Title: "title"}, "content"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				storage := newFakeStorage()
				store := newTestStore(t, storage, nil)
				sets := storage.sets

				_, err := store.Create(context.Background(), tt.input)

				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.field, vErr.Field)
				assert.Equal(t, 3, store.List(CategoryAll, 1, 10).Total)
				assert.Equal(t, sets, storage.sets)
			})
		}
	})

	t.Run("WriteFailureIsSwallowed", func(t *testing.T) {
		storage := newFakeStorage()
		store := newTestStore(t, storage, nil)
		storage.setFunc = func(ctx context.Context, key, value string) error {
			return errors.New("quota exceeded")
		}

		post, err := store.Create(context.Background(), PostInput{Title: "a", Content: "b"})
		require.NoError(t, err)

		_, err = store.Post(post.ID)
		assert.NoError(t, err)
	})
}

func TestStore_Post(t *testing.T) {
	store := newTestStore(t, newFakeStorage(), nil)

	p, err := store.Post(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)

	_, err = store.Post(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Reset(t *testing.T) {
	storage := newFakeStorage()
	store := newTestStore(t, storage, nil)

	store.Reset(context.Background())

	assert.Equal(t, 0, store.List(CategoryAll, 1, 10).Total)
	assert.Equal(t, "[]", storage.data[postsKey])
}

func TestStore_Draft(t *testing.T) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		store := newTestStore(t, newFakeStorage(), nil)

		_, ok := store.Draft(context.Background())
		assert.False(t, ok)

		saved, err := store.SaveDraft(context.Background(), Draft{Title: "wip", Tags: "a, b"})
		require.NoError(t, err)
		assert.Equal(t, day(20), saved.Timestamp)

		loaded, ok := store.Draft(context.Background())
		require.True(t, ok)
		assert.Equal(t, saved, loaded)
	})

	t.Run("WriteFailureIsReturned", func(t *testing.T) {
		storage := newFakeStorage()
		store := newTestStore(t, storage, nil)
		storage.setFunc = func(ctx context.Context, key, value string) error {
			return errors.New("quota exceeded")
		}

		_, err := store.SaveDraft(context.Background(), Draft{Title: "wip"})
		assert.Error(t, err)
	})

	t.Run("MalformedDraftIsIgnored", func(t *testing.T) {
		storage := newFakeStorage()
		storage.data[draftKey] = "oops"
		store := newTestStore(t, storage, nil)

		_, ok := store.Draft(context.Background())
		assert.False(t, ok)
	})
}

// ctxAwareStorage fails writes whose context is already done, as database drivers do.
func ctxAwareStorage() *fakeStorage {
	storage := newFakeStorage()
	storage.setFunc = func(ctx context.Context, key, value string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		storage.mu.Lock()
		defer storage.mu.Unlock()
		storage.sets++
		storage.data[key] = value
		return nil
	}
	return storage
}

func TestStore_WritesSurviveCancelledCaller(t *testing.T) {
	t.Run("CreatedPostSurvivesRestart", func(t *testing.T) {
		storage := ctxAwareStorage()
		store := newTestStore(t, storage, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		post, err := store.Create(ctx, PostInput{Title: "Late reader", Content: "Gone before the reply."})
		require.NoError(t, err)

		restarted := newTestStore(t, storage, nil)
		got, err := restarted.Post(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Late reader", got.Title)
		assert.Equal(t, 4, restarted.List(CategoryAll, 1, 10).Total)
	})

	t.Run("ResetIsPersisted", func(t *testing.T) {
		storage := ctxAwareStorage()
		store := newTestStore(t, storage, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		store.Reset(ctx)

		assert.Equal(t, "[]", storage.data[postsKey])
	})

	t.Run("DraftIsSaved", func(t *testing.T) {
		storage := ctxAwareStorage()
		store := newTestStore(t, storage, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.SaveDraft(ctx, Draft{Title: "wip"})
		require.NoError(t, err)

		loaded, ok := store.Draft(context.Background())
		require.True(t, ok)
		assert.Equal(t, "wip", loaded.Title)
	})
}

func TestStore_Categories(t *testing.T) {
	store := NewStore(newFakeStorage(), noOpLogger(), Options{})

	categories := store.Categories()
	require.Len(t, categories, 4)
	assert.Equal(t, Category{Name: "threat-intelligence", Label: "Threat Intelligence"}, categories[1])
}

func TestView(t *testing.T) {
	seed := []Post{
		{ID: 1, Category: "case-studies", Date: day(5)},
		{ID: 2, Category: "security-tips", Date: day(10)},
		{ID: 3, Category: "security-tips", Date: day(15)},
		{ID: 4, Category: "security-tips", Date: day(16)},
	}
	store := newTestStore(t, newFakeStorage(), seed)

	view := store.NewView(1)
	assert.Equal(t, CategoryAll, view.Category())
	assert.Equal(t, []int64{4}, postIDs(view.Page().Posts))

	page := view.LoadMore()
	assert.Equal(t, 2, view.PageCount())
	assert.Equal(t, []int64{4, 3}, postIDs(page.Posts))

	view.FilterByCategory("case-studies")
	assert.Equal(t, 1, view.PageCount())
	page = view.Page()
	assert.Equal(t, []int64{1}, postIDs(page.Posts))
	assert.False(t, page.HasMore)

	view.FilterByCategory("security-tips")
	view.ShowPages(2)
	assert.Equal(t, []int64{4, 3}, postIDs(view.Page().Posts))
}
