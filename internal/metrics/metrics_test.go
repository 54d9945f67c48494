package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-brkic/bamboo-filter"
)

func TestObserveAndScrape(t *testing.T) {
	c := NewCollector()
	c.Observe(bamboo.Stats{
		Size:           10,
		Capacity:       16,
		LoadFactor:     0.625,
		Expanding:      true,
		Overflows:      1,
		MigrationDrops: 2,
		Expansions:     3,
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "bamboo_filter_size 10")
	assert.Contains(t, body, "bamboo_filter_expanding 1")
	assert.True(t, strings.Contains(body, "bamboo_filter_migration_drops_total 2"))
}
