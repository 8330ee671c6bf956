package storage

import (
	"context"

	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

// MockCasebook is a mock implementation of Casebook for testing
type MockCasebook struct {
	ArchiveFunc func(ctx context.Context, report verdict.Report) error
	RecentFunc  func(ctx context.Context, limit int) ([]verdict.Report, error)
	CloseFunc   func() error

	// Track calls for testing
	ArchiveCalls []verdict.Report
	RecentCalls  []int
	CloseCalls   int
}

var _ Casebook = (*MockCasebook)(nil)

func NewMockCasebook() *MockCasebook {
	return &MockCasebook{
		ArchiveCalls: make([]verdict.Report, 0),
		RecentCalls:  make([]int, 0),
	}
}

func (m *MockCasebook) Archive(ctx context.Context, report verdict.Report) error {
	m.ArchiveCalls = append(m.ArchiveCalls, report)
	if m.ArchiveFunc != nil {
		return m.ArchiveFunc(ctx, report)
	}
	return nil
}

// Recent defaults to replaying archived reports, newest first.
func (m *MockCasebook) Recent(ctx context.Context, limit int) ([]verdict.Report, error) {
	m.RecentCalls = append(m.RecentCalls, limit)
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}

	var reports []verdict.Report
	for i := len(m.ArchiveCalls) - 1; i >= 0; i-- {
		if limit > 0 && len(reports) == limit {
			break
		}
		reports = append(reports, m.ArchiveCalls[i])
	}
	return reports, nil
}

func (m *MockCasebook) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
