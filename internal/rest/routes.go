package rest

import (
	"net/http"
	"time"

	_ "github.com/daniilsolovey/secure-site/docs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	postsPath       = apiV1Prefix + "/posts"
	postByIDPath    = postsPath + "/:id"
	categoriesPath  = apiV1Prefix + "/categories"
	draftPath       = apiV1Prefix + "/draft"
	assessmentsPath = apiV1Prefix + "/assessments/:kind"

	// HTML fragments for the static page shell
	fragmentPostsPath      = "/blog/fragments/posts"
	fragmentPostPath       = fragmentPostsPath + "/:id"
	fragmentAssessmentPath = "/assessment/fragments/:kind"
	rssPath                = "/blog/rss.xml"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
)

// RegisterRoutes builds the echo instance serving every HTTP route of the site.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	h.registerAPIRoutes(e)
	h.registerFragmentRoutes(e)

	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.Swagger)

	return e
}

func (h *Handler) registerAPIRoutes(e *echo.Echo) {
	e.GET(postsPath, h.Posts)
	e.POST(postsPath, h.CreatePost)
	e.GET(postByIDPath, h.PostByID)
	e.GET(categoriesPath, h.Categories)
	e.GET(draftPath, h.Draft)
	e.PUT(draftPath, h.SaveDraft)
	e.POST(assessmentsPath, h.Assessment)
}

func (h *Handler) registerFragmentRoutes(e *echo.Echo) {
	e.GET(fragmentPostsPath, h.PostsFragment)
	e.GET(fragmentPostPath, h.PostFragment)
	e.POST(fragmentAssessmentPath, h.AssessmentFragment)
	e.GET(rssPath, h.RSS)
}

// Swagger serves the generated OpenAPI document.
func (h *Handler) Swagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
