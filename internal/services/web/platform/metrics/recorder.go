// Package metrics records onboarding wizard activity.
package metrics

import "time"

// Recorder defines the interface for recording wizard metrics.
type Recorder interface {
	// ObserveNavigation records one step navigation attempt.
	ObserveNavigation(kind, action string, advanced bool)
	// ObserveSubmission records one gateway submission.
	ObserveSubmission(kind, outcome string, duration time.Duration)
	// SetActiveSessions reports the number of live wizard sessions.
	SetActiveSessions(kind string, count int)
}

// NoopRecorder implements Recorder with no-op behavior for when metrics are disabled.
type NoopRecorder struct{}

// Nop returns a no-op metrics recorder that discards all metrics.
func Nop() Recorder {
	return NoopRecorder{}
}

// ObserveNavigation does nothing.
func (NoopRecorder) ObserveNavigation(_, _ string, _ bool) {}

// ObserveSubmission does nothing.
func (NoopRecorder) ObserveSubmission(_, _ string, _ time.Duration) {}

// SetActiveSessions does nothing.
func (NoopRecorder) SetActiveSessions(_ string, _ int) {}
