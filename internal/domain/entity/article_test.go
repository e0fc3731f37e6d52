package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	article, err := NewArticle("Storm Report", "Coastal weather", 42, []string{"weather", "coast"})
	require.NoError(t, err)

	assert.Equal(t, "Storm Report", article.Title)
	assert.Equal(t, "Coastal weather", article.Description)
	assert.Equal(t, 42, article.Views)
	assert.Equal(t, []string{"weather", "coast"}, article.Tags)
}

func TestNewArticle_NilTagsBecomeEmpty(t *testing.T) {
	article, err := NewArticle("t", "d", 0, nil)
	require.NoError(t, err)

	assert.NotNil(t, article.Tags)
	assert.Empty(t, article.Tags)
	assert.False(t, article.HasTags())
}

func TestNewArticle_NegativeViews(t *testing.T) {
	_, err := NewArticle("t", "d", -1, nil)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "views", vErr.Field)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestNewArticle_CopiesTags(t *testing.T) {
	tags := []string{"go", "db"}
	article, err := NewArticle("t", "d", 1, tags)
	require.NoError(t, err)

	tags[0] = "mutated"
	assert.Equal(t, "go", article.Tags[0])
}

func TestArticle_TagList(t *testing.T) {
	article, err := NewArticle("t", "d", 1, []string{"go"})
	require.NoError(t, err)

	list := article.TagList()
	list[0] = "changed"

	assert.Equal(t, []string{"go"}, article.Tags)
	assert.True(t, article.HasTags())
}
