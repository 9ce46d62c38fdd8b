package metrics

import "time"

// CacheRecorder reports in-process cache activity to Prometheus.
type CacheRecorder struct{}

func (CacheRecorder) RecordHit()       { CacheHitsTotal.Inc() }
func (CacheRecorder) RecordMiss()      { CacheMissesTotal.Inc() }
func (CacheRecorder) RecordEviction()  { CacheEvictionsTotal.Inc() }
func (CacheRecorder) RecordSize(n int) { CacheEntries.Set(float64(n)) }

func (CacheRecorder) RecordExpiration(n int) {
	CacheExpirationsTotal.Add(float64(n))
}

// ObserveDB records the duration of a data source call and counts it as an
// error when err is non-nil.
func ObserveDB(operation, table string, start time.Time, err error) {
	DBOperationDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	if err != nil {
		DBErrorsTotal.WithLabelValues(operation, table).Inc()
	}
}
