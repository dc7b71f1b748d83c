package core

import "context"

// Fallback texts surfaced to callers when the insight provider fails or
// returns no usable text.
const (
	FallbackGradeComment = "Great effort, keep it up!"
	FallbackStatsInsight = "Unable to analyze stats at this time."
)

// InsightService drafts grade comments and performance insights through an
// external generative-text provider.
//
// Implementations must tolerate provider failure: they return the matching
// fallback text with a nil error instead of propagating provider errors.
// Only context cancellation may surface an error to the caller.
type InsightService interface {
	DraftGradeComment(ctx context.Context, studentName, subject string, grade int) (string, error)
	AnalyzeStats(ctx context.Context, stats interface{}) (string, error)
}
