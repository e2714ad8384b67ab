package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/daniilsolovey/secure-site/internal/blog"
	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"
)

const (
	feedSize  = 20
	feedTitle = "Secure Site Blog"
)

func (h *Handler) feed() *feeds.Feed {
	siteURL := strings.TrimRight(h.baseURL, "/")
	posts := h.store.Recent(feedSize)

	feed := &feeds.Feed{
		Title:       feedTitle,
		Link:        &feeds.Link{Href: siteURL + "/blog.html"},
		Description: "Security tips, threat intelligence and case studies",
		Author:      &feeds.Author{Name: h.store.DefaultAuthor()},
		Created:     time.Now(),
	}
	if len(posts) > 0 {
		feed.Created = posts[0].Date
	}

	for _, p := range posts {
		detail := blog.RenderDetail(p, h.store.DefaultAuthor())
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          strconv.FormatInt(p.ID, 10),
			Title:       p.Title,
			Link:        &feeds.Link{Href: siteURL + "/blog.html#post-" + strconv.FormatInt(p.ID, 10)},
			Author:      &feeds.Author{Name: detail.Author},
			Description: p.Excerpt,
			Created:     p.Date,
			Content:     detail.Content.HTML(),
		})
	}

	return feed
}

// RSS handles GET /blog/rss.xml
// @Summary Blog RSS feed
// @Description RSS 2.0 feed of the newest posts
// @Tags blog
// @Produce xml
// @Success 200 {string} string
// @Router /blog/rss.xml [get]
func (h *Handler) RSS(c echo.Context) error {
	rss, err := h.feed().ToRss()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "failed to generate RSS")
	}

	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}
