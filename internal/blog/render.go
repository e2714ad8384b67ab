package blog

import "time"

const dateLayout = "January 2, 2006"

// Summary is the card shown in the post listing.
type Summary struct {
	ID            int64
	Title         string
	Excerpt       string
	Category      string
	CategoryLabel string
	Date          time.Time
	DisplayDate   string
	ReadTime      string
	Tags          []string
	Featured      bool
}

// Detail is the full post shown in the reading overlay.
type Detail struct {
	Summary
	Author  string
	Content Blocks
}

func RenderSummary(p Post) Summary {
	readTime := p.ReadTime
	if readTime == "" {
		readTime = fallbackReadTime
	}

	return Summary{
		ID:            p.ID,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Category:      p.Category,
		CategoryLabel: FormatCategory(p.Category),
		Date:          p.Date,
		DisplayDate:   p.Date.UTC().Format(dateLayout),
		ReadTime:      readTime,
		Tags:          p.Tags,
		Featured:      p.Featured,
	}
}

func RenderSummaries(posts []Post) []Summary {
	result := make([]Summary, len(posts))
	for i := range posts {
		result[i] = RenderSummary(posts[i])
	}

	return result
}

// RenderDetail renders a post for reading; defaultAuthor stands in for a missing author.
func RenderDetail(p Post, defaultAuthor string) Detail {
	author := p.Author
	if author == "" {
		author = defaultAuthor
	}

	return Detail{
		Summary: RenderSummary(p),
		Author:  author,
		Content: ParseMarkdown(p.Content),
	}
}
