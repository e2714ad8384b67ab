package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/secure-site/internal/blog"
	"github.com/labstack/echo/v4"
)

type Options struct {
	// PageSize is used when a listing request does not name one.
	PageSize int
	// BaseURL is the public site address used for feed links.
	BaseURL string
}

type Handler struct {
	store    *blog.Store
	log      *slog.Logger
	pageSize int
	baseURL  string
}

func NewHandler(store *blog.Store, log *slog.Logger, opts Options) *Handler {
	return &Handler{
		store:    store,
		log:      log,
		pageSize: blog.ClampPageSize(opts.PageSize),
		baseURL:  opts.BaseURL,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// pageRequest reads page and pageSize query parameters, falling back to the first page of the default size.
func (h *Handler) pageRequest(c echo.Context) (page, pageSize int, err error) {
	page, pageSize = 1, h.pageSize

	err = echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("pageSize", &pageSize).
		BindError()

	var bErr *echo.BindingError
	if errors.As(err, &bErr) {
		return 0, 0, errors.New("invalid " + bErr.Field)
	} else if err != nil {
		return 0, 0, err
	}

	if page < 1 {
		return 0, 0, errors.New("invalid page")
	}
	if pageSize < 1 {
		return 0, 0, errors.New("invalid pageSize")
	}

	return page, min(pageSize, blog.MaxPageSize), nil
}

// Health handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
