package historymock

import (
	"context"
	"sync"

	domain "egov-portal-backend/internal/domain/history"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository. When no
// AppendFn is set it records entries in memory so tests can assert on the
// audit trail.
type Repo struct {
	AppendFn      func(ctx context.Context, e *domain.Entry) error
	ListByOwnerFn func(ctx context.Context, ownerType string, ownerID uint64) ([]domain.Entry, error)

	mu      sync.Mutex
	Entries []domain.Entry
}

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.mu.Lock()
	m.Entries = append(m.Entries, *e)
	m.mu.Unlock()
	return nil
}

func (m *Repo) ListByOwner(ctx context.Context, ownerType string, ownerID uint64) ([]domain.Entry, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerType, ownerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Entry
	for _, e := range m.Entries {
		if e.OwnerType == ownerType && e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Recorded returns a copy of everything appended so far.
func (m *Repo) Recorded() []domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Entry, len(m.Entries))
	copy(out, m.Entries)
	return out
}
