package rpc

import (
	"github.com/daniilsolovey/secure-site/internal/assessment"
	"github.com/daniilsolovey/secure-site/internal/blog"
)

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func NewPost(p blog.Post) Post {
	return Post{
		ID:       p.ID,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Category: p.Category,
		Tags:     tagsOrEmpty(p.Tags),
		Author:   p.Author,
		Date:     p.Date,
		ReadTime: p.ReadTime,
		Featured: p.Featured,
	}
}

func NewPostSummary(s blog.Summary) PostSummary {
	return PostSummary{
		ID:            s.ID,
		Title:         s.Title,
		Excerpt:       s.Excerpt,
		Category:      s.Category,
		CategoryLabel: s.CategoryLabel,
		Date:          s.Date,
		DisplayDate:   s.DisplayDate,
		ReadTime:      s.ReadTime,
		Tags:          tagsOrEmpty(s.Tags),
		Featured:      s.Featured,
	}
}

func NewPostSummaries(in []blog.Summary) []PostSummary {
	result := make([]PostSummary, len(in))
	for i := range in {
		result[i] = NewPostSummary(in[i])
	}
	return result
}

func NewPostDetail(d blog.Detail) PostDetail {
	return PostDetail{
		PostSummary: NewPostSummary(d.Summary),
		Author:      d.Author,
		HTML:        d.Content.HTML(),
	}
}

func NewPostsPage(p blog.Page) PostsPage {
	return PostsPage{
		Posts:    NewPostSummaries(blog.RenderSummaries(p.Posts)),
		Category: p.Category,
		Total:    p.Total,
		HasMore:  p.HasMore,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

func NewCategories(in []blog.Category) []Category {
	result := make([]Category, len(in))
	for i, c := range in {
		result[i] = Category{Category: c.Name, Label: c.Label}
	}
	return result
}

func NewDraft(d blog.Draft) Draft {
	return Draft{
		Title:     d.Title,
		Category:  d.Category,
		Excerpt:   d.Excerpt,
		Content:   d.Content,
		Tags:      d.Tags,
		Timestamp: d.Timestamp,
	}
}

func NewReport(r assessment.Report) Report {
	return Report{
		Kind:            string(r.Kind),
		Title:           r.Title,
		Score:           r.Score,
		Tier:            string(r.Result.Tier),
		Severity:        r.Result.Tier.Severity(),
		Message:         r.Result.Message,
		Recommendations: r.Result.Recommendations,
	}
}
