package cache

// Recorder receives cache activity. Implementations must be cheap and safe
// for concurrent use since they are called while the cache lock is held.
type Recorder interface {
	RecordHit()
	RecordMiss()
	RecordEviction()
	RecordExpiration(n int)
	RecordSize(n int)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) RecordHit()           {}
func (NoopRecorder) RecordMiss()          {}
func (NoopRecorder) RecordEviction()      {}
func (NoopRecorder) RecordExpiration(int) {}
func (NoopRecorder) RecordSize(int)       {}
