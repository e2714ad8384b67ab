package blog

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// Storage is the key-value port the store persists its snapshot through.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type Options struct {
	DefaultAuthor string
	Categories    []string
	// Seed populates an empty store. SeedPosts is used when nil.
	Seed []Post
	Now  func() time.Time
}

// Page is a prefix of the filtered, date-sorted posts.
type Page struct {
	Posts    []Post
	Category string
	Page     int
	PageSize int
	Total    int
	HasMore  bool
}

// Store owns the posts of the site. Every mutation rewrites the whole snapshot.
type Store struct {
	storage    Storage
	log        *slog.Logger
	author     string
	categories []string
	seed       []Post
	now        func() time.Time

	mu      sync.RWMutex
	posts   []Post
	lastID  int64
	version uint64

	persistMu sync.Mutex
	persisted uint64
}

func NewStore(storage Storage, logger *slog.Logger, opts Options) *Store {
	s := &Store{
		storage:    storage,
		log:        logger,
		author:     cmp.Or(opts.DefaultAuthor, DefaultAuthor),
		categories: opts.Categories,
		seed:       opts.Seed,
		now:        opts.Now,
	}

	if len(s.categories) == 0 {
		s.categories = DefaultCategories
	}
	if s.seed == nil {
		s.seed = SeedPosts()
	}
	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// Initialize loads the persisted posts. Unreadable or malformed data counts as an empty store,
// and an empty store is filled with the seed posts.
func (s *Store) Initialize(ctx context.Context) {
	posts := s.load(ctx)

	seeded := false
	if len(posts) == 0 {
		posts = make([]Post, len(s.seed))
		for i := range s.seed {
			posts[i] = s.seed[i].clone()
			posts[i].Author = cmp.Or(posts[i].Author, s.author)
		}
		seeded = true
	}

	s.mu.Lock()
	s.posts = posts
	s.lastID = 0
	for _, p := range posts {
		s.lastID = max(s.lastID, p.ID)
	}
	version, data, err := s.snapshotLocked()
	s.mu.Unlock()

	if seeded {
		s.log.Info("blog store seeded", "posts", len(posts))
		s.persist(ctx, version, data, err)
	}
}

func (s *Store) load(ctx context.Context) []Post {
	raw, ok, err := s.storage.Get(ctx, postsKey)
	if err != nil {
		s.log.Warn("failed to read persisted posts", "error", err)
		return nil
	} else if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}

	var posts []Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		s.log.Warn("persisted posts are malformed, starting empty", "error", err)
		return nil
	}

	return posts
}

// snapshotLocked serializes the posts and bumps the snapshot version. Callers hold s.mu.
func (s *Store) snapshotLocked() (uint64, []byte, error) {
	s.version++
	data, err := json.Marshal(s.posts)

	return s.version, data, err
}

// persist writes a snapshot unless a newer one has already been written.
// The write outlives a cancelled caller. Failures are logged and the in-memory posts stay authoritative.
func (s *Store) persist(ctx context.Context, version uint64, data []byte, err error) {
	if err != nil {
		s.log.Error("failed to encode posts", "error", err)
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if version <= s.persisted {
		return
	}

	if err := s.storage.Set(context.WithoutCancel(ctx), postsKey, string(data)); err != nil {
		s.log.Error("failed to persist posts", "error", err, "version", version)
		return
	}
	s.persisted = version
}

// List returns the first page*pageSize posts of category sorted by date, newest first.
// Posts with equal dates keep their store order.
func (s *Store) List(category string, page, pageSize int) Page {
	page = max(page, 1)
	pageSize = max(pageSize, 1)

	s.mu.RLock()
	filtered := filterByCategory(s.posts, category)
	s.mu.RUnlock()

	sortByDate(filtered)

	limit := len(filtered)
	if page <= limit/pageSize {
		limit = page * pageSize
	}

	return Page{
		Posts:    filtered[:limit:limit],
		Category: category,
		Page:     page,
		PageSize: pageSize,
		Total:    len(filtered),
		HasMore:  limit < len(filtered),
	}
}

func filterByCategory(posts []Post, category string) []Post {
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if category == CategoryAll || p.Category == category {
			result = append(result, p.clone())
		}
	}

	return result
}

func sortByDate(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		return b.Date.Compare(a.Date)
	})
}

// Recent returns the n newest posts.
func (s *Store) Recent(n int) []Post {
	return s.List(CategoryAll, 1, n).Posts
}

// Post returns the post with the given id or ErrNotFound.
func (s *Store) Post(id int64) (Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p.clone(), nil
		}
	}

	return Post{}, ErrNotFound
}

func (s *Store) Categories() []Category {
	result := make([]Category, len(s.categories))
	for i, c := range s.categories {
		result[i] = Category{Name: c, Label: FormatCategory(c)}
	}

	return result
}

func (s *Store) DefaultAuthor() string {
	return s.author
}

// Create validates and stores a new post in front of the existing ones.
func (s *Store) Create(ctx context.Context, in PostInput) (Post, error) {
	post := Post{
		Title:    strings.TrimSpace(in.Title),
		Excerpt:  strings.TrimSpace(in.Excerpt),
		Content:  strings.TrimSpace(in.Content),
		Category: strings.TrimSpace(in.Category),
		Tags:     NormalizeTags(in.Tags),
		Author:   s.author,
		Featured: false,
	}

	if post.Title == "" {
		return Post{}, &ValidationError{Field: "title"}
	}
	if post.Content == "" {
		return Post{}, &ValidationError{Field: "content"}
	}

	now := s.now()
	post.Date = now
	post.ReadTime = EstimateReadTime(post.Content)

	s.mu.Lock()
	post.ID = max(now.UnixMilli(), s.lastID+1)
	s.lastID = post.ID
	s.posts = append([]Post{post}, s.posts...)
	version, data, err := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, version, data, err)
	s.log.Info("blog post created", "id", post.ID, "category", post.Category)

	return post.clone(), nil
}

// Reset removes every post.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.posts = []Post{}
	version, data, err := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, version, data, err)
}

// SaveDraft replaces the stored draft. Unlike posts, a failed draft write is reported to the caller.
func (s *Store) SaveDraft(ctx context.Context, d Draft) (Draft, error) {
	d.Timestamp = s.now()

	data, err := json.Marshal(d)
	if err != nil {
		return Draft{}, fmt.Errorf("encode draft: %w", err)
	}

	if err := s.storage.Set(context.WithoutCancel(ctx), draftKey, string(data)); err != nil {
		return Draft{}, fmt.Errorf("persist draft: %w", err)
	}

	return d, nil
}

// Draft returns the stored draft, if a readable one exists.
func (s *Store) Draft(ctx context.Context) (Draft, bool) {
	raw, ok, err := s.storage.Get(ctx, draftKey)
	if err != nil {
		s.log.Warn("failed to read draft", "error", err)
		return Draft{}, false
	} else if !ok {
		return Draft{}, false
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		s.log.Warn("stored draft is malformed", "error", err)
		return Draft{}, false
	}

	return d, true
}
