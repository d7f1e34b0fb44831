package services

import (
	"sync"
	"testing"
	"time"

	"campus-events/app/models"
	"campus-events/app/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memoNotifier records who was notified. Safe for concurrent use because
// services notify outside the store lock.
type memoNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *memoNotifier) Notify(userID, title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, userID)
}

func (n *memoNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func newTestStore() *store.Store {
	return store.New(store.NopSaver{})
}

func seedUser(t *testing.T, st *store.Store, role models.Role) *models.User {
	t.Helper()
	id := uuid.New().String()
	user := &models.User{
		ID:        id,
		Username:  "user-" + id[:8],
		Email:     id[:8] + "@campus.local",
		Password:  "$2a$14$hashedhashedhashedhashed",
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, st.Update(func(d *store.Data) error {
		d.Users[user.ID] = user
		return nil
	}))
	return user
}

// seedEvent stores an approved event starting tomorrow. mutate tweaks the
// record before it is stored.
func seedEvent(t *testing.T, st *store.Store, organizerID string, mutate func(*models.Event)) *models.Event {
	t.Helper()
	event := &models.Event{
		ID:          uuid.New().String(),
		Title:       "Tech Talk",
		Description: "An evening of lightning talks",
		OrganizerID: organizerID,
		Venue:       "Main Auditorium",
		StartDate:   time.Now().Add(24 * time.Hour),
		EndDate:     time.Now().Add(27 * time.Hour),
		Category:    "technology",
		Status:      models.EventApproved,
		CreatedAt:   time.Now(),
	}
	if mutate != nil {
		mutate(event)
	}
	require.NoError(t, st.Update(func(d *store.Data) error {
		d.Events[event.ID] = event
		return nil
	}))
	return event
}

func validCreateInput() CreateEventInput {
	return CreateEventInput{
		Title:       "Hackathon",
		Description: "48 hours of building",
		Venue:       "Innovation Lab",
		StartDate:   time.Now().Add(48 * time.Hour),
		EndDate:     time.Now().Add(96 * time.Hour),
		Category:    "technology",
	}
}
