package article

import (
	"strings"

	"article-filter/internal/domain/entity"
)

// Query is a normalized filter request.
type Query struct {
	MinViews int
	// Keyword is trimmed and lower-cased. Empty means no keyword restriction.
	Keyword string
}

// NewQuery normalizes the raw caller input.
func NewQuery(minViews int, keyword string) Query {
	return Query{
		MinViews: minViews,
		Keyword:  strings.ToLower(strings.TrimSpace(keyword)),
	}
}

// Matches reports whether a passes both the view threshold and the keyword.
func (q Query) Matches(a entity.Article) bool {
	if a.Views < q.MinViews {
		return false
	}
	if q.Keyword == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title), q.Keyword) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q.Keyword) {
			return true
		}
	}
	return false
}

// Apply returns the matching articles in their original order.
// The result is never nil.
func (q Query) Apply(articles []entity.Article) []entity.Article {
	out := make([]entity.Article, 0, len(articles))
	for _, a := range articles {
		if q.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}
