package services

import (
	"fmt"
	"time"

	"campus-events/app/models"
	"campus-events/app/store"

	"github.com/google/uuid"
)

// FeedbackService collects post-event ratings from attendees.
type FeedbackService struct {
	store *store.Store
}

func NewFeedbackService(st *store.Store) *FeedbackService {
	return &FeedbackService{store: st}
}

// Submit records feedback for an event the user attended. One entry per
// (user, event); the rating must fall in 1..5.
func (s *FeedbackService) Submit(userID, eventID string, rating int, comment string) (*models.Feedback, error) {
	fb := &models.Feedback{
		ID:        uuid.New().String(),
		UserID:    userID,
		EventID:   eventID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := validate.Struct(fb); err != nil {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	var created models.Feedback
	err := s.store.Update(func(d *store.Data) error {
		if _, ok := d.Events[eventID]; !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		reg := d.FindRegistration(userID, eventID)
		if reg == nil || !reg.Attended {
			return fmt.Errorf("%w: feedback is only open to attendees", ErrInvalidState)
		}
		if d.FindFeedback(userID, eventID) != nil {
			return fmt.Errorf("%w: feedback already submitted for this event", ErrDuplicate)
		}
		d.Feedback[fb.ID] = fb
		created = *fb
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FeedbackEntry pairs a feedback record with its author.
type FeedbackEntry struct {
	Feedback models.Feedback `json:"feedback"`
	User     models.User     `json:"user"`
}

// ForEvent returns all feedback for an event with author details.
func (s *FeedbackService) ForEvent(eventID string) ([]FeedbackEntry, error) {
	var out []FeedbackEntry
	err := s.store.View(func(d *store.Data) error {
		for _, f := range d.FeedbackForEvent(eventID) {
			entry := FeedbackEntry{Feedback: *f}
			if u, ok := d.Users[f.UserID]; ok {
				entry.User = *u
			}
			out = append(out, entry)
		}
		return nil
	})
	return out, err
}
