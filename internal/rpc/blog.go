package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/secure-site/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// BlogService provides RPC methods for the blog content store.
type BlogService struct {
	zenrpc.Service
	store    *blog.Store
	pageSize int
}

func NewBlogService(store *blog.Store, pageSize int) *BlogService {
	return &BlogService{store: store, pageSize: blog.ClampPageSize(pageSize)}
}

// List returns the first page*pageSize posts of a category sorted by date, newest first.
//
//zenrpc:filter listing filter
//zenrpc:return page of post summaries
//zenrpc:400 invalid page or pageSize
func (s *BlogService) List(ctx context.Context, filter PostFilter) (PostsPage, error) {
	category, page, pageSize := blog.CategoryAll, 1, s.pageSize
	if filter.Category != nil && *filter.Category != "" {
		category = *filter.Category
	}
	if filter.Page != nil {
		if *filter.Page < 1 {
			return PostsPage{}, zenrpc.NewStringError(400, "invalid page")
		}
		page = *filter.Page
	}
	if filter.PageSize != nil {
		if *filter.PageSize < 1 {
			return PostsPage{}, zenrpc.NewStringError(400, "invalid pageSize")
		}
		pageSize = min(*filter.PageSize, blog.MaxPageSize)
	}

	return NewPostsPage(s.store.List(category, page, pageSize)), nil
}

// ByID returns a single post with its content rendered to HTML.
//
//zenrpc:id post numeric ID
//zenrpc:return post with rendered content
//zenrpc:400 id must be positive
//zenrpc:404 post not found
func (s *BlogService) ByID(ctx context.Context, id int64) (*PostDetail, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	post, err := s.store.Post(id)
	if errors.Is(err, blog.ErrNotFound) {
		return nil, zenrpc.NewStringError(404, err.Error())
	} else if err != nil {
		return nil, err
	}

	detail := NewPostDetail(blog.RenderDetail(post, s.store.DefaultAuthor()))
	return &detail, nil
}

// Create stores a new post in front of the existing ones.
//
//zenrpc:post new post fields
//zenrpc:return created post
//zenrpc:400 title or content is missing
func (s *BlogService) Create(ctx context.Context, post PostInput) (*Post, error) {
	created, err := s.store.Create(ctx, post.ToModel())

	var vErr *blog.ValidationError
	if errors.As(err, &vErr) {
		return nil, zenrpc.NewStringError(400, vErr.Error())
	} else if err != nil {
		return nil, err
	}

	result := NewPost(created)
	return &result, nil
}

// Categories returns the categories offered by the filter bar.
//
//zenrpc:return list of categories
func (s *BlogService) Categories(ctx context.Context) []Category {
	return NewCategories(s.store.Categories())
}

// SaveDraft replaces the in-progress draft.
//
//zenrpc:draft draft fields
//zenrpc:return saved draft
//zenrpc:500 draft could not be saved
func (s *BlogService) SaveDraft(ctx context.Context, draft DraftInput) (*Draft, error) {
	saved, err := s.store.SaveDraft(ctx, draft.ToModel())
	if err != nil {
		return nil, err
	}

	result := NewDraft(saved)
	return &result, nil
}

// Draft returns the in-progress draft.
//
//zenrpc:return saved draft
//zenrpc:404 draft not found
func (s *BlogService) Draft(ctx context.Context) (*Draft, error) {
	draft, ok := s.store.Draft(ctx)
	if !ok {
		return nil, zenrpc.NewStringError(404, "draft not found")
	}

	result := NewDraft(draft)
	return &result, nil
}
