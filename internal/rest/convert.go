package rest

import (
	"github.com/daniilsolovey/secure-site/internal/assessment"
	"github.com/daniilsolovey/secure-site/internal/blog"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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

func NewPostDetail(d blog.Detail) PostDetail {
	return PostDetail{
		PostSummary: NewPostSummary(d.Summary),
		Author:      d.Author,
		Blocks:      Map(d.Content, NewBlock),
		HTML:        d.Content.HTML(),
	}
}

func NewBlock(b blog.Block) Block {
	return Block{
		Kind:    b.Kind.String(),
		Inlines: Map(b.Inlines, NewInline),
	}
}

func NewInline(in blog.Inline) Inline {
	return Inline{
		Kind: in.Kind.String(),
		Text: in.Text,
	}
}

func NewPostsPage(p blog.Page) PostsPage {
	return PostsPage{
		Posts:    Map(blog.RenderSummaries(p.Posts), NewPostSummary),
		Category: p.Category,
		Total:    p.Total,
		HasMore:  p.HasMore,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		Category: c.Name,
		Label:    c.Label,
	}
}

func NewDraft(d blog.Draft) Draft {
	return Draft(d)
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
