// Package dummyinsight provides an in-process InsightService double that
// records calls and can be flipped into failure mode.
package dummyinsight

import (
	"context"
	"fmt"
	"sync"

	"eduquest/core"
)

type DraftCall struct {
	StudentName string
	Subject     string
	Grade       int
}

type Service struct {
	mu sync.Mutex

	// Fail makes every call behave like a provider outage: the fallback
	// text is returned with a nil error.
	Fail bool

	// canned responses; blank means a generated default
	NextComment string
	NextInsight string

	DraftCalls []DraftCall
	StatsCalls []interface{}
}

var _ core.InsightService = (*Service)(nil)

func NewService() *Service { return &Service{} }

func (svc *Service) DraftGradeComment(ctx context.Context, studentName, subject string, grade int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.DraftCalls = append(svc.DraftCalls, DraftCall{StudentName: studentName, Subject: subject, Grade: grade})

	if svc.Fail {
		return core.FallbackGradeComment, nil
	}
	if svc.NextComment != "" {
		return svc.NextComment, nil
	}
	return fmt.Sprintf("%s is doing well in %s (%d/5).", studentName, subject, grade), nil
}

func (svc *Service) AnalyzeStats(ctx context.Context, stats interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.StatsCalls = append(svc.StatsCalls, stats)

	if svc.Fail {
		return core.FallbackStatsInsight, nil
	}
	if svc.NextInsight != "" {
		return svc.NextInsight, nil
	}
	return "1. Keep doing what works.\n2. Support Grade 10.\n3. Celebrate Grade 11.", nil
}
