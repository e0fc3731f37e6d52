package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"article-filter/internal/handler/http/respond"
	"article-filter/internal/observability/logging"
	artUC "article-filter/internal/usecase/article"
)

const errInvalidMinViews = "min_views must be a non-negative integer"

// FilterHandler serves GET /articles?min_views=&keyword=.
type FilterHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

func (h FilterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	minViews, ok := parseMinViews(q.Get("min_views"))
	if !ok {
		respond.Error(w, http.StatusBadRequest, errInvalidMinViews)
		return
	}

	res, err := h.Svc.Filter(r.Context(), minViews, q.Get("keyword"))
	if err != nil {
		logger := h.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger = logging.WithRequestID(r.Context(), logger)

		if errors.Is(err, artUC.ErrStoreUnavailable) {
			respond.Internal(w, logger, http.StatusServiceUnavailable, "article store unavailable", err)
			return
		}
		respond.Internal(w, logger, http.StatusInternalServerError, "internal server error", err)
		return
	}

	respond.JSON(w, http.StatusOK, toListResponse(res.Articles))
}

// parseMinViews defaults an absent value to 0.
func parseMinViews(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
