package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/secure-site/internal/blog"
	"github.com/labstack/echo/v4"
)

type PostRequest struct {
	Title    string   `json:"title" form:"title"`
	Excerpt  string   `json:"excerpt" form:"excerpt"`
	Content  string   `json:"content" form:"content"`
	Category string   `json:"category" form:"category"`
	Tags     []string `json:"tags" form:"tags"`
}

type DraftRequest struct {
	Title    string `json:"title" form:"title"`
	Category string `json:"category" form:"category"`
	Excerpt  string `json:"excerpt" form:"excerpt"`
	Content  string `json:"content" form:"content"`
	Tags     string `json:"tags" form:"tags"`
}

func categoryParam(c echo.Context) string {
	if category := c.QueryParam("category"); category != "" {
		return category
	}
	return blog.CategoryAll
}

func postID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// Posts handles GET /api/v1/posts
// @Summary List blog posts
// @Description Returns the first page*pageSize posts of the category, newest first
// @Tags blog
// @Produce json
// @Param category query string false "Category token, all by default"
// @Param page query int false "Number of pages to show (default: 1)"
// @Param pageSize query int false "Page size (default: 6, max: 50)"
// @Success 200 {object} rest.PostsPage
// @Failure 400 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *Handler) Posts(c echo.Context) error {
	page, pageSize, err := h.pageRequest(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	result := h.store.List(categoryParam(c), page, pageSize)

	return c.JSON(http.StatusOK, NewPostsPage(result))
}

// PostByID handles GET /api/v1/posts/:id
// @Summary Get post by ID
// @Description Returns the post with its content rendered to blocks and HTML
// @Tags blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.PostDetail
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/posts/{id} [get]
func (h *Handler) PostByID(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	post, err := h.store.Post(id)
	if errors.Is(err, blog.ErrNotFound) {
		return h.handleError(c, err, http.StatusNotFound, err.Error())
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewPostDetail(blog.RenderDetail(post, h.store.DefaultAuthor())))
}

// CreatePost handles POST /api/v1/posts
// @Summary Create post
// @Description Accepts JSON or form fields; form tags may be comma separated
// @Tags blog
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param post body rest.PostRequest true "New post"
// @Success 201 {object} rest.Post
// @Failure 400 {object} map[string]string
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c echo.Context) error {
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.store.Create(c.Request().Context(), blog.PostInput(req))

	var vErr *blog.ValidationError
	if errors.As(err, &vErr) {
		return h.handleError(c, err, http.StatusBadRequest, vErr.Error())
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusCreated, NewPost(post))
}

// Categories handles GET /api/v1/categories
// @Summary List categories
// @Tags blog
// @Produce json
// @Success 200 {array} rest.Category
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.store.Categories(), NewCategory))
}

// Draft handles GET /api/v1/draft
// @Summary Get saved draft
// @Tags blog
// @Produce json
// @Success 200 {object} rest.Draft
// @Failure 404 {object} map[string]string
// @Router /api/v1/draft [get]
func (h *Handler) Draft(c echo.Context) error {
	draft, ok := h.store.Draft(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "draft not found"})
	}

	return c.JSON(http.StatusOK, NewDraft(draft))
}

// SaveDraft handles PUT /api/v1/draft
// @Summary Save draft
// @Tags blog
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param draft body rest.DraftRequest true "Draft"
// @Success 200 {object} rest.Draft
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/draft [put]
func (h *Handler) SaveDraft(c echo.Context) error {
	var req DraftRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	draft, err := h.store.SaveDraft(c.Request().Context(), blog.Draft{
		Title:    req.Title,
		Category: req.Category,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Tags:     req.Tags,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to save draft")
	}

	return c.JSON(http.StatusOK, NewDraft(draft))
}
