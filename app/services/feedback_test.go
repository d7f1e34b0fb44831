package services

import (
	"testing"

	"campus-events/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAndAttend(t *testing.T, regs *RegistrationService, organizerID, userID, eventID string) {
	t.Helper()
	require.NoError(t, regs.Register(userID, eventID))
	reg, ok := regs.IsRegistered(userID, eventID)
	require.True(t, ok)
	_, err := regs.MarkAttendance(organizerID, eventID, reg.ID)
	require.NoError(t, err)
}

func TestFeedbackRequiresAttendance(t *testing.T) {
	st := newTestStore()
	organizer := seedUser(t, st, models.RoleOrganizer)
	student := seedUser(t, st, models.RoleStudent)
	regs := NewRegistrationService(st, &memoNotifier{}, PayloadQR{})
	svc := NewFeedbackService(st)

	event := seedEvent(t, st, organizer.ID, nil)

	// No registration at all.
	_, err := svc.Submit(student.ID, event.ID, 5, "great")
	assert.ErrorIs(t, err, ErrInvalidState)

	// Registered but never attended.
	require.NoError(t, regs.Register(student.ID, event.ID))
	_, err = svc.Submit(student.ID, event.ID, 5, "great")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestFeedbackRatingBounds(t *testing.T) {
	st := newTestStore()
	organizer := seedUser(t, st, models.RoleOrganizer)
	student := seedUser(t, st, models.RoleStudent)
	regs := NewRegistrationService(st, &memoNotifier{}, PayloadQR{})
	svc := NewFeedbackService(st)

	event := seedEvent(t, st, organizer.ID, nil)
	registerAndAttend(t, regs, organizer.ID, student.ID, event.ID)

	_, err := svc.Submit(student.ID, event.ID, 0, "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Submit(student.ID, event.ID, 6, "")
	assert.ErrorIs(t, err, ErrValidation)

	fb, err := svc.Submit(student.ID, event.ID, 4, "well organised")
	require.NoError(t, err)
	assert.Equal(t, 4, fb.Rating)
}

func TestFeedbackOncePerEvent(t *testing.T) {
	st := newTestStore()
	organizer := seedUser(t, st, models.RoleOrganizer)
	student := seedUser(t, st, models.RoleStudent)
	regs := NewRegistrationService(st, &memoNotifier{}, PayloadQR{})
	svc := NewFeedbackService(st)

	event := seedEvent(t, st, organizer.ID, nil)
	registerAndAttend(t, regs, organizer.ID, student.ID, event.ID)

	_, err := svc.Submit(student.ID, event.ID, 5, "first")
	require.NoError(t, err)
	_, err = svc.Submit(student.ID, event.ID, 3, "second thoughts")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestFeedbackSubmitReturnsDetachedCopy(t *testing.T) {
	st := newTestStore()
	organizer := seedUser(t, st, models.RoleOrganizer)
	student := seedUser(t, st, models.RoleStudent)
	regs := NewRegistrationService(st, &memoNotifier{}, PayloadQR{})
	svc := NewFeedbackService(st)

	event := seedEvent(t, st, organizer.ID, nil)
	registerAndAttend(t, regs, organizer.ID, student.ID, event.ID)

	fb, err := svc.Submit(student.ID, event.ID, 5, "original comment")
	require.NoError(t, err)
	fb.Comment = "tampered"

	entries, err := svc.ForEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "original comment", entries[0].Feedback.Comment)
}

func TestFeedbackForEventIncludesAuthors(t *testing.T) {
	st := newTestStore()
	organizer := seedUser(t, st, models.RoleOrganizer)
	regs := NewRegistrationService(st, &memoNotifier{}, PayloadQR{})
	svc := NewFeedbackService(st)

	event := seedEvent(t, st, organizer.ID, nil)
	for i := 0; i < 2; i++ {
		student := seedUser(t, st, models.RoleStudent)
		registerAndAttend(t, regs, organizer.ID, student.ID, event.ID)
		_, err := svc.Submit(student.ID, event.ID, 5, "loved it")
		require.NoError(t, err)
	}

	entries, err := svc.ForEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, entry.Feedback.UserID, entry.User.ID)
	}
}
