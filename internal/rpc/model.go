package rpc

import (
	"time"

	"github.com/daniilsolovey/secure-site/internal/blog"
)

type PostFilter struct {
	//category category token, all by default
	Category *string `json:"category,omitempty"`
	//page=1 number of pages to show
	Page *int `json:"page,omitempty"`
	//pageSize items per page, 6 by default
	PageSize *int `json:"pageSize,omitempty"`
}

type PostInput struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (p PostInput) ToModel() blog.PostInput {
	return blog.PostInput{
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Category: p.Category,
		Tags:     p.Tags,
	}
}

type DraftInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	// Tags is the raw comma-separated tag field.
	Tags string `json:"tags"`
}

func (d DraftInput) ToModel() blog.Draft {
	return blog.Draft{
		Title:    d.Title,
		Category: d.Category,
		Excerpt:  d.Excerpt,
		Content:  d.Content,
		Tags:     d.Tags,
	}
}

type Category struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

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

type PostSummary struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"categoryLabel"`
	Date          time.Time `json:"date"`
	DisplayDate   string    `json:"displayDate"`
	ReadTime      string    `json:"readTime"`
	Tags          []string  `json:"tags"`
	Featured      bool      `json:"featured"`
}

type PostDetail struct {
	PostSummary
	Author string `json:"author"`
	HTML   string `json:"html"`
}

type PostsPage struct {
	Posts    []PostSummary `json:"posts"`
	Category string        `json:"category"`
	Total    int           `json:"total"`
	HasMore  bool          `json:"hasMore"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

type Draft struct {
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

type Report struct {
	Kind            string   `json:"kind"`
	Title           string   `json:"title"`
	Score           int      `json:"score"`
	Tier            string   `json:"tier"`
	Severity        int      `json:"severity"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}
