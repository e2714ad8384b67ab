package rest

import "time"

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
	Author string  `json:"author"`
	Blocks []Block `json:"blocks"`
	HTML   string  `json:"html"`
}

type Block struct {
	Kind    string   `json:"kind"`
	Inlines []Inline `json:"inlines"`
}

type Inline struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
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
