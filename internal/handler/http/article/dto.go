// Package article serves the read-only article filtering endpoint.
package article

import "article-filter/internal/domain/entity"

// DTO is the JSON form of one article.
type DTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Views       int      `json:"views"`
	Tags        []string `json:"tags"`
}

// ListResponse is the body of GET /articles.
type ListResponse struct {
	Articles []DTO `json:"articles"`
	Count    int   `json:"count"`
}

func toDTO(a entity.Article) DTO {
	return DTO{
		Title:       a.Title,
		Description: a.Description,
		Views:       a.Views,
		Tags:        a.TagList(),
	}
}

func toListResponse(articles []entity.Article) ListResponse {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return ListResponse{Articles: out, Count: len(out)}
}
