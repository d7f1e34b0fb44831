package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"campus-events/app/models"
	"campus-events/app/store"
)

// ReportService computes read-only statistics over the store. Nothing is
// cached; every call recomputes from the live collections.
type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// RegistrationDetail is a registration joined with its user and event for
// activity listings.
type RegistrationDetail struct {
	Registration models.Registration `json:"registration"`
	User         models.User         `json:"user"`
	Event        models.Event        `json:"event"`
}

type AdminDashboard struct {
	TotalUsers          int                  `json:"total_users"`
	TotalEvents         int                  `json:"total_events"`
	PendingEvents       int                  `json:"pending_events"`
	TotalRegistrations  int                  `json:"total_registrations"`
	RecentEvents        []models.Event       `json:"recent_events"`
	RecentRegistrations []RegistrationDetail `json:"recent_registrations"`
}

// Dashboard assembles the admin landing page statistics: totals plus the five
// most recent events and registrations.
func (s *ReportService) Dashboard() (*AdminDashboard, error) {
	out := &AdminDashboard{}
	err := s.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			if u.Role != models.RoleAdmin {
				out.TotalUsers++
			}
		}
		out.TotalEvents = len(d.Events)
		for _, e := range d.Events {
			if e.Status == models.EventPending {
				out.PendingEvents++
			}
		}
		out.TotalRegistrations = len(d.Registrations)

		events := make([]models.Event, 0, len(d.Events))
		for _, e := range d.Events {
			events = append(events, *e)
		}
		sort.Slice(events, func(i, j int) bool {
			return events[i].CreatedAt.After(events[j].CreatedAt)
		})
		if len(events) > 5 {
			events = events[:5]
		}
		out.RecentEvents = events

		regs := make([]*models.Registration, 0, len(d.Registrations))
		for _, r := range d.Registrations {
			regs = append(regs, r)
		}
		sort.Slice(regs, func(i, j int) bool {
			return regs[i].RegisteredAt.After(regs[j].RegisteredAt)
		})
		if len(regs) > 5 {
			regs = regs[:5]
		}
		for _, r := range regs {
			detail := RegistrationDetail{Registration: *r}
			if u, ok := d.Users[r.UserID]; ok {
				detail.User = *u
			}
			if e, ok := d.Events[r.EventID]; ok {
				detail.Event = *e
			}
			out.RecentRegistrations = append(out.RecentRegistrations, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type PopularEvent struct {
	Event         models.Event `json:"event"`
	Registrations int          `json:"registrations"`
}

type Reports struct {
	UserStats struct {
		Students   int `json:"students"`
		Organizers int `json:"organizers"`
		Total      int `json:"total"`
	} `json:"user_stats"`
	EventStats struct {
		Total     int `json:"total"`
		Approved  int `json:"approved"`
		Pending   int `json:"pending"`
		Rejected  int `json:"rejected"`
		Cancelled int `json:"cancelled"`
	} `json:"event_stats"`
	RegistrationStats struct {
		Total    int `json:"total"`
		Attended int `json:"attended"`
	} `json:"registration_stats"`
	PopularEvents []PopularEvent `json:"popular_events"`
	CategoryStats map[string]int `json:"category_stats"`
	MonthlyTrends map[string]int `json:"monthly_trends"`
}

// Reports computes the full admin report: user and event breakdowns, the five
// most-registered events, counts per category and monthly registration buckets
// over the trailing 180 days.
func (s *ReportService) Reports() (*Reports, error) {
	out := &Reports{
		CategoryStats: make(map[string]int),
		MonthlyTrends: make(map[string]int),
	}
	err := s.store.View(func(d *store.Data) error {
		for _, u := range d.Users {
			switch u.Role {
			case models.RoleStudent:
				out.UserStats.Students++
				out.UserStats.Total++
			case models.RoleOrganizer:
				out.UserStats.Organizers++
				out.UserStats.Total++
			}
		}

		for _, e := range d.Events {
			out.EventStats.Total++
			switch e.Status {
			case models.EventApproved:
				out.EventStats.Approved++
			case models.EventPending:
				out.EventStats.Pending++
			case models.EventRejected:
				out.EventStats.Rejected++
			case models.EventCancelled:
				out.EventStats.Cancelled++
			}
			out.CategoryStats[e.Category]++
		}

		popularity := make(map[string]int)
		cutoff := time.Now().AddDate(0, 0, -180)
		for _, r := range d.Registrations {
			out.RegistrationStats.Total++
			if r.Attended {
				out.RegistrationStats.Attended++
			}
			popularity[r.EventID]++
			if !r.RegisteredAt.Before(cutoff) {
				out.MonthlyTrends[r.RegisteredAt.Format("2006-01")]++
			}
		}

		type popCount struct {
			eventID string
			count   int
		}
		pops := make([]popCount, 0, len(popularity))
		for id, n := range popularity {
			pops = append(pops, popCount{id, n})
		}
		sort.Slice(pops, func(i, j int) bool { return pops[i].count > pops[j].count })
		for _, p := range pops {
			if len(out.PopularEvents) == 5 {
				break
			}
			if e, ok := d.Events[p.eventID]; ok {
				out.PopularEvents = append(out.PopularEvents, PopularEvent{Event: *e, Registrations: p.count})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type OrganizerDashboard struct {
	TotalEvents        int              `json:"total_events"`
	ApprovedEvents     int              `json:"approved_events"`
	PendingEvents      int              `json:"pending_events"`
	TotalRegistrations int              `json:"total_registrations"`
	RecentEvents       []EventWithStats `json:"recent_events"`
}

// OrganizerDashboard summarises an organizer's events and their registration
// counts, with the five most recent events.
func (s *ReportService) OrganizerDashboard(organizerID string) (*OrganizerDashboard, error) {
	out := &OrganizerDashboard{}
	err := s.store.View(func(d *store.Data) error {
		for _, e := range d.EventsByOrganizer(organizerID) {
			regs := len(d.RegistrationsForEvent(e.ID))
			out.TotalEvents++
			out.TotalRegistrations += regs
			switch e.Status {
			case models.EventApproved:
				out.ApprovedEvents++
			case models.EventPending:
				out.PendingEvents++
			}
			if len(out.RecentEvents) < 5 {
				out.RecentEvents = append(out.RecentEvents, EventWithStats{Event: *e, Registrations: regs})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type EventAnalytics struct {
	Event          models.Event         `json:"event"`
	Registrations  []RegistrationDetail `json:"registrations"`
	Feedback       []FeedbackEntry      `json:"feedback"`
	Attended       int                  `json:"attended"`
	AvgRating      float64              `json:"avg_rating"`
	AttendanceRate float64              `json:"attendance_rate"`
}

// EventAnalytics builds the per-event report for its organizer: registrations
// with user details, feedback, average rating and attendance rate.
func (s *ReportService) EventAnalytics(organizerID, eventID string) (*EventAnalytics, error) {
	out := &EventAnalytics{}
	err := s.store.View(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		out.Event = *event

		for _, r := range d.RegistrationsForEvent(eventID) {
			detail := RegistrationDetail{Registration: *r}
			if u, ok := d.Users[r.UserID]; ok {
				detail.User = *u
			}
			out.Registrations = append(out.Registrations, detail)
			if r.Attended {
				out.Attended++
			}
		}

		totalRating := 0
		for _, f := range d.FeedbackForEvent(eventID) {
			entry := FeedbackEntry{Feedback: *f}
			if u, ok := d.Users[f.UserID]; ok {
				entry.User = *u
			}
			out.Feedback = append(out.Feedback, entry)
			totalRating += f.Rating
		}

		if len(out.Feedback) > 0 {
			out.AvgRating = round2(float64(totalRating) / float64(len(out.Feedback)))
		}
		if len(out.Registrations) > 0 {
			out.AttendanceRate = round2(float64(out.Attended) / float64(len(out.Registrations)) * 100)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
