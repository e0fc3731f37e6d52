// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article value record together with the rules used to build it
// from persisted rows.
package entity

// Article represents a published item as read from the article store.
// An Article is a value: once constructed it is never mutated, and
// Tags is never nil.
type Article struct {
	Title       string
	Description string
	Views       int
	Tags        []string
}

// NewArticle builds an Article and enforces its invariants.
// A nil tag slice becomes an empty one and the given slice is copied so the
// caller cannot mutate the article through it afterwards.
// Returns a ValidationError when views is negative.
func NewArticle(title, description string, views int, tags []string) (Article, error) {
	if err := ValidateViews(views); err != nil {
		return Article{}, err
	}

	copied := make([]string, len(tags))
	copy(copied, tags)

	return Article{
		Title:       title,
		Description: description,
		Views:       views,
		Tags:        copied,
	}, nil
}

// TagList returns a copy of the article tags.
func (a Article) TagList() []string {
	out := make([]string, len(a.Tags))
	copy(out, a.Tags)
	return out
}

// HasTags reports whether the article carries at least one tag.
func (a Article) HasTags() bool {
	return len(a.Tags) > 0
}
