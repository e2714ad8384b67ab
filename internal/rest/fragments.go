package rest

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/daniilsolovey/secure-site/internal/assessment"
	"github.com/daniilsolovey/secure-site/internal/blog"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var fragments = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type postsFragment struct {
	Posts    []blog.Summary
	Category string
	Page     int
	Total    int
	HasMore  bool
	NextURL  string
}

type postFragment struct {
	blog.Summary
	Author string
	HTML   template.HTML
}

func (h *Handler) renderFragment(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func nextPageURL(category string, page int) string {
	q := url.Values{}
	q.Set("category", category)
	q.Set("page", strconv.Itoa(page))

	return fragmentPostsPath + "?" + q.Encode()
}

// PostsFragment handles GET /blog/fragments/posts and renders the post cards for the page shell.
func (h *Handler) PostsFragment(c echo.Context) error {
	page, pageSize, err := h.pageRequest(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	view := h.store.NewView(pageSize)
	view.FilterByCategory(categoryParam(c))
	view.ShowPages(page)
	result := view.Page()

	data := postsFragment{
		Posts:    blog.RenderSummaries(result.Posts),
		Category: view.Category(),
		Page:     view.PageCount(),
		Total:    result.Total,
		HasMore:  result.HasMore,
	}
	if result.HasMore {
		data.NextURL = nextPageURL(view.Category(), view.PageCount()+1)
	}

	return h.renderFragment(c, "posts", data)
}

// PostFragment handles GET /blog/fragments/posts/:id and renders the reading overlay of one post.
func (h *Handler) PostFragment(c echo.Context) error {
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

	detail := blog.RenderDetail(post, h.store.DefaultAuthor())

	return h.renderFragment(c, "post", postFragment{
		Summary: detail.Summary,
		Author:  detail.Author,
		// Blocks.HTML escapes every text run.
		HTML: template.HTML(detail.Content.HTML()),
	})
}

// AssessmentFragment handles POST /assessment/fragments/:kind and renders the result panel.
func (h *Handler) AssessmentFragment(c echo.Context) error {
	answers, err := readAnswers(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid answers")
	}

	report := assessment.Evaluate(assessment.ParseKind(c.Param("kind")), answers)

	return h.renderFragment(c, "assessment", NewReport(report))
}
