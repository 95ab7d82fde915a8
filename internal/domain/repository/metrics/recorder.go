package metrics

import "time"

// Recorder observes usecase outcomes.
type Recorder interface {
	RecordOperation(operation string, duration time.Duration, err error)
	RecordDroppedEntry(pageID string)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordOperation(string, time.Duration, error) {}

func (Nop) RecordDroppedEntry(string) {}
