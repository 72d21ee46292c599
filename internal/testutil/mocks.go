package testutil

import (
	"context"
	"sync"

	"teamboard/internal/db"

	"github.com/stretchr/testify/mock"
)

// MockUserStore is a testify mock of the user persistence used by auth
type MockUserStore struct {
	mock.Mock
}

// Create mocks UserRepository.Create
func (m *MockUserStore) Create(ctx context.Context, user *db.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByEmail mocks UserRepository.GetByEmail
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*db.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*db.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID mocks UserRepository.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*db.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*db.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// RecordingActivityStore keeps entries in memory and fails on demand
type RecordingActivityStore struct {
	mu      sync.Mutex
	entries []*db.Activity

	// Err is returned by Create when set
	Err error
}

// Create stores the entry or returns Err
func (s *RecordingActivityStore) Create(_ context.Context, a *db.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	a.ID = int64(len(s.entries) + 1)
	s.entries = append(s.entries, a)
	return nil
}

// Entries returns a copy of the recorded entries
func (s *RecordingActivityStore) Entries() []*db.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*db.Activity(nil), s.entries...)
}
