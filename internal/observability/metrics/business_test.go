package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFilter(t *testing.T) {
	tests := []struct {
		name    string
		outcome string
		results int
	}{
		{name: "matched", outcome: OutcomeMatched, results: 3},
		{name: "empty", outcome: OutcomeEmpty, results: 0},
		{name: "store error", outcome: OutcomeStoreError, results: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(ArticleFilterRequestsTotal.WithLabelValues(tt.outcome))

			assert.NotPanics(t, func() {
				RecordFilter(tt.outcome, tt.results)
			})

			after := testutil.ToFloat64(ArticleFilterRequestsTotal.WithLabelValues(tt.outcome))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordStoreFetch(t *testing.T) {
	before := testutil.ToFloat64(StoreArticlesFetchedTotal.WithLabelValues("postgres"))

	RecordStoreFetch("postgres", 15*time.Millisecond, 4)

	after := testutil.ToFloat64(StoreArticlesFetchedTotal.WithLabelValues("postgres"))
	assert.Equal(t, before+4, after)
}

func TestRecordStoreFetchError(t *testing.T) {
	before := testutil.ToFloat64(StoreFetchErrorsTotal.WithLabelValues("sqlite"))

	RecordStoreFetchError("sqlite", time.Second)

	after := testutil.ToFloat64(StoreFetchErrorsTotal.WithLabelValues("sqlite"))
	assert.Equal(t, before+1, after)
}

func TestUpdateDBConnectionStats(t *testing.T) {
	UpdateDBConnectionStats(7, 3)

	assert.Equal(t, float64(7), testutil.ToFloat64(DBConnectionsActive))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionsIdle))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/articles", "200"))

	RecordHTTPRequest("GET", "/articles", "200", 20*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/articles", "200"))
	assert.Equal(t, before+1, after)
}
