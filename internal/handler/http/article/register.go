package article

import (
	"log/slog"
	"net/http"

	artUC "article-filter/internal/usecase/article"
)

// Register mounts the article routes on mux.
func Register(mux *http.ServeMux, svc artUC.Service, logger *slog.Logger) {
	mux.Handle("GET /articles", FilterHandler{Svc: svc, Logger: logger})
}
