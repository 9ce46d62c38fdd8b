package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCacheRecorder(t *testing.T) {
	r := CacheRecorder{}
	hits := testutil.ToFloat64(CacheHitsTotal)
	expired := testutil.ToFloat64(CacheExpirationsTotal)

	r.RecordHit()
	r.RecordExpiration(3)
	r.RecordSize(42)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheHitsTotal))
	assert.Equal(t, expired+3, testutil.ToFloat64(CacheExpirationsTotal))
	assert.Equal(t, float64(42), testutil.ToFloat64(CacheEntries))
}

func TestObserveDB_CountsErrors(t *testing.T) {
	before := testutil.ToFloat64(DBErrorsTotal.WithLabelValues("search", "properties"))

	ObserveDB("search", "properties", time.Now(), nil)
	ObserveDB("search", "properties", time.Now(), errors.New("timeout"))

	assert.Equal(t, before+1, testutil.ToFloat64(DBErrorsTotal.WithLabelValues("search", "properties")))
}

func TestInit_Idempotent(t *testing.T) {
	Init()
	Init()
}
