package services

import (
	"fmt"
	"time"

	"campus-events/app/models"
	"campus-events/app/store"

	"github.com/google/uuid"
)

// RegistrationService handles individual and team registration against
// capacity constraints and keeps the per-event attendee counter.
type RegistrationService struct {
	store    *store.Store
	notifier Notifier
	qr       QRGenerator
}

func NewRegistrationService(st *store.Store, notifier Notifier, qr QRGenerator) *RegistrationService {
	return &RegistrationService{store: st, notifier: notifier, qr: qr}
}

// Register signs the user up for an approved event. For competition events the
// user must already belong to an active team, and every member of that team
// who is not yet registered gets a registration. The attendee counter grows by
// the full team size in that case, matching how the platform has always
// counted team sign-ups.
func (s *RegistrationService) Register(userID, eventID string) error {
	var title string
	err := s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok || event.Status != models.EventApproved {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if d.FindRegistration(userID, eventID) != nil {
			return fmt.Errorf("%w: already registered for this event", ErrDuplicate)
		}
		title = event.Title

		if event.IsCompetition {
			team := d.ActiveTeamForUser(userID, eventID)
			if team == nil {
				return fmt.Errorf("%w: must create or join a team before registering", ErrInvalidState)
			}
			for _, memberID := range team.Members {
				if d.FindRegistration(memberID, eventID) != nil {
					continue
				}
				if err := s.addRegistration(d, memberID, eventID); err != nil {
					return err
				}
			}
			event.CurrentAttendees += len(team.Members)
			return nil
		}

		if event.MaxAttendees > 0 && event.CurrentAttendees >= event.MaxAttendees {
			return fmt.Errorf("%w: event is full", ErrCapacityExceeded)
		}
		if err := s.addRegistration(d, userID, eventID); err != nil {
			return err
		}
		event.CurrentAttendees++
		return nil
	})
	if err != nil {
		return err
	}
	s.notifier.Notify(userID, "Registration Successful",
		fmt.Sprintf("You have successfully registered for %s", title))
	return nil
}

func (s *RegistrationService) addRegistration(d *store.Data, userID, eventID string) error {
	reg := &models.Registration{
		ID:           uuid.New().String(),
		UserID:       userID,
		EventID:      eventID,
		RegisteredAt: time.Now(),
	}
	code, err := s.qr.Generate(RegistrationPayload(eventID, reg.ID, userID))
	if err != nil {
		return fmt.Errorf("generate qr code: %w", err)
	}
	reg.QRCode = code
	d.Registrations[reg.ID] = reg
	return nil
}

// Unregister removes the user's registration and decrements the attendee
// counter, never below zero. Teammates keep their own registrations.
func (s *RegistrationService) Unregister(userID, eventID string) error {
	return s.store.Update(func(d *store.Data) error {
		reg := d.FindRegistration(userID, eventID)
		if reg == nil {
			return fmt.Errorf("%w: registration", ErrNotFound)
		}
		delete(d.Registrations, reg.ID)
		if event, ok := d.Events[eventID]; ok && event.CurrentAttendees > 0 {
			event.CurrentAttendees--
		}
		return nil
	})
}

// IsRegistered reports whether the user holds a registration for the event and
// returns it if so.
func (s *RegistrationService) IsRegistered(userID, eventID string) (*models.Registration, bool) {
	var reg *models.Registration
	_ = s.store.View(func(d *store.Data) error {
		if r := d.FindRegistration(userID, eventID); r != nil {
			clone := *r
			reg = &clone
		}
		return nil
	})
	return reg, reg != nil
}

// RegisteredEvent pairs a registration with its event for listings.
type RegisteredEvent struct {
	Registration models.Registration `json:"registration"`
	Event        models.Event        `json:"event"`
}

// ForUser returns the user's registrations with event details, newest first.
func (s *RegistrationService) ForUser(userID string) ([]RegisteredEvent, error) {
	var out []RegisteredEvent
	err := s.store.View(func(d *store.Data) error {
		for _, r := range d.RegistrationsForUser(userID) {
			event, ok := d.Events[r.EventID]
			if !ok {
				continue
			}
			out = append(out, RegisteredEvent{Registration: *r, Event: *event})
		}
		return nil
	})
	return out, err
}

// MarkAttendance toggles the attended flag on a registration. Only the event's
// organizer may do this.
func (s *RegistrationService) MarkAttendance(organizerID, eventID, registrationID string) (bool, error) {
	var attended bool
	err := s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		reg, ok := d.Registrations[registrationID]
		if !ok || reg.EventID != eventID {
			return fmt.Errorf("%w: registration", ErrNotFound)
		}
		reg.Attended = !reg.Attended
		attended = reg.Attended
		return nil
	})
	return attended, err
}
