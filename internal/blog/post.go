package blog

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// CategoryAll selects every post regardless of its category.
	CategoryAll = "all"

	// DefaultAuthor is used when a post carries no author.
	DefaultAuthor = "Jonathan Bateman"

	// DefaultPageSize and MaxPageSize bound listing pages for every transport.
	DefaultPageSize = 6
	MaxPageSize     = 50

	postsKey = "blogPosts"
	draftKey = "blogDraft"

	wordsPerMinute   = 200
	fallbackReadTime = "5 min read"
)

// DefaultCategories are the categories offered by the blog filter bar.
var DefaultCategories = []string{"security-tips", "threat-intelligence", "case-studies", "industry-news"}

// Post is a single blog article. The JSON layout is the persisted snapshot format.
type Post struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
	Author   string    `json:"author"`
	Date     time.Time `json:"date"`
	ReadTime string    `json:"readTime"`
	Featured bool      `json:"featured"`
}

func (p Post) clone() Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// PostInput holds the user-supplied fields of a new post.
type PostInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Tags     []string
}

// Draft is the single in-progress post kept between editing sessions.
type Draft struct {
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

type Category struct {
	Name  string
	Label string
}

// EstimateReadTime returns a display string such as "3 min read" assuming 200 words per minute.
func EstimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}

// NormalizeTags splits comma-separated entries, trims them and drops empty ones.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, raw := range tags {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				result = append(result, tag)
			}
		}
	}

	return result
}

// FormatCategory turns a category token into its display label: "case-studies" becomes "Case Studies".
func FormatCategory(category string) string {
	words := strings.Split(category, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}

	return strings.Join(words, " ")
}

// ClampPageSize returns n capped at MaxPageSize, or DefaultPageSize when n is not positive.
func ClampPageSize(n int) int {
	if n < 1 {
		return DefaultPageSize
	}
	return min(n, MaxPageSize)
}
