package store

import (
	"sort"
	"strings"

	"campus-events/app/models"
)

// UserByEmail returns the user with the given email, or nil.
func (d *Data) UserByEmail(email string) *models.User {
	for _, u := range d.Users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// FindRegistration returns the registration for the (user, event) pair, or nil.
func (d *Data) FindRegistration(userID, eventID string) *models.Registration {
	for _, r := range d.Registrations {
		if r.UserID == userID && r.EventID == eventID {
			return r
		}
	}
	return nil
}

// RegistrationsForEvent returns all registrations for an event.
func (d *Data) RegistrationsForEvent(eventID string) []*models.Registration {
	var regs []*models.Registration
	for _, r := range d.Registrations {
		if r.EventID == eventID {
			regs = append(regs, r)
		}
	}
	return regs
}

// RegistrationsForUser returns all registrations belonging to a user, newest
// first.
func (d *Data) RegistrationsForUser(userID string) []*models.Registration {
	var regs []*models.Registration
	for _, r := range d.Registrations {
		if r.UserID == userID {
			regs = append(regs, r)
		}
	}
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].RegisteredAt.After(regs[j].RegisteredAt)
	})
	return regs
}

// ActiveTeamForUser returns the active team the user belongs to for an event,
// or nil.
func (d *Data) ActiveTeamForUser(userID, eventID string) *models.Team {
	for _, t := range d.Teams {
		if t.EventID == eventID && t.Status == models.TeamActive && t.HasMember(userID) {
			return t
		}
	}
	return nil
}

// TeamForUser returns any team (regardless of status) the user belongs to for
// an event, or nil.
func (d *Data) TeamForUser(userID, eventID string) *models.Team {
	for _, t := range d.Teams {
		if t.EventID == eventID && t.HasMember(userID) {
			return t
		}
	}
	return nil
}

// TeamsForUser returns every team the user belongs to, across events.
func (d *Data) TeamsForUser(userID string) []*models.Team {
	var teams []*models.Team
	for _, t := range d.Teams {
		if t.HasMember(userID) {
			teams = append(teams, t)
		}
	}
	return teams
}

// TeamByCode looks up an active team by its join code, case-insensitively.
func (d *Data) TeamByCode(code string) *models.Team {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, t := range d.Teams {
		if t.Status == models.TeamActive && t.TeamCode == code {
			return t
		}
	}
	return nil
}

// TeamCodeTaken reports whether any team already uses the given join code.
func (d *Data) TeamCodeTaken(code string) bool {
	for _, t := range d.Teams {
		if t.TeamCode == code {
			return true
		}
	}
	return false
}

// SubmissionForTeam returns the submission for the (team, event) pair, or nil.
func (d *Data) SubmissionForTeam(teamID, eventID string) *models.Submission {
	for _, s := range d.Submissions {
		if s.TeamID == teamID && s.EventID == eventID {
			return s
		}
	}
	return nil
}

// EvaluatedSubmissions returns the evaluated submissions of an event sorted by
// score descending. Ties are broken by submission time (earliest first), then
// id, so repeated rank computations over the same scores always agree.
func (d *Data) EvaluatedSubmissions(eventID string) []*models.Submission {
	var subs []*models.Submission
	for _, s := range d.Submissions {
		if s.EventID == eventID && s.Status == models.SubmissionEvaluated {
			subs = append(subs, s)
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		if *subs[i].Score != *subs[j].Score {
			return *subs[i].Score > *subs[j].Score
		}
		if !subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].SubmittedAt.Before(subs[j].SubmittedAt)
		}
		return subs[i].ID < subs[j].ID
	})
	return subs
}

// SubmissionsForEvent returns every submission for an event, newest first.
func (d *Data) SubmissionsForEvent(eventID string) []*models.Submission {
	var subs []*models.Submission
	for _, s := range d.Submissions {
		if s.EventID == eventID {
			subs = append(subs, s)
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
	return subs
}

// FindFeedback returns the feedback entry for the (user, event) pair, or nil.
func (d *Data) FindFeedback(userID, eventID string) *models.Feedback {
	for _, f := range d.Feedback {
		if f.UserID == userID && f.EventID == eventID {
			return f
		}
	}
	return nil
}

// FeedbackForEvent returns all feedback left for an event.
func (d *Data) FeedbackForEvent(eventID string) []*models.Feedback {
	var fbs []*models.Feedback
	for _, f := range d.Feedback {
		if f.EventID == eventID {
			fbs = append(fbs, f)
		}
	}
	return fbs
}

// EventsByOrganizer returns an organizer's events, newest first.
func (d *Data) EventsByOrganizer(organizerID string) []*models.Event {
	var events []*models.Event
	for _, e := range d.Events {
		if e.OrganizerID == organizerID {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events
}

// DeleteEventCascade removes an event together with every registration,
// feedback entry, team and submission that references it.
func (d *Data) DeleteEventCascade(eventID string) {
	delete(d.Events, eventID)
	for id, r := range d.Registrations {
		if r.EventID == eventID {
			delete(d.Registrations, id)
		}
	}
	for id, f := range d.Feedback {
		if f.EventID == eventID {
			delete(d.Feedback, id)
		}
	}
	for id, t := range d.Teams {
		if t.EventID == eventID {
			delete(d.Teams, id)
		}
	}
	for id, s := range d.Submissions {
		if s.EventID == eventID {
			delete(d.Submissions, id)
		}
	}
}
