// Package rowscan maps article result rows to entities for the SQL stores.
package rowscan

import (
	"database/sql"
	"fmt"

	"article-filter/internal/domain/entity"
)

// Query selects every article. Rows come back in whatever order the
// database yields them.
const Query = `SELECT title, description, views, tags FROM articles`

// Articles scans rows produced by Query. A row failing entity validation
// fails the whole scan. The caller closes rows.
func Articles(rows *sql.Rows) ([]entity.Article, error) {
	articles := make([]entity.Article, 0, 100)
	for rows.Next() {
		var (
			title, description string
			views              int64
			tags               sql.NullString
		)
		if err := rows.Scan(&title, &description, &views, &tags); err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}

		article, err := entity.NewArticle(title, description, int(views), entity.ParseNullableTags(tags))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(articles)+1, err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}
	return articles, nil
}
