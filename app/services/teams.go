package services

import (
	"fmt"
	"strings"
	"time"

	"campus-events/app/models"
	"campus-events/app/store"

	"github.com/google/uuid"
)

// defaultTeamSizeMax caps team membership when the event does not set its own
// limit.
const defaultTeamSizeMax = 4

// TeamService manages competition teams, their submissions and scoring.
type TeamService struct {
	store *store.Store
}

func NewTeamService(st *store.Store) *TeamService {
	return &TeamService{store: st}
}

// cloneTeam copies a team including its member list, so the result can leave
// the store lock safely.
func cloneTeam(t *models.Team) *models.Team {
	clone := *t
	clone.Members = append([]string(nil), t.Members...)
	return &clone
}

// CreateTeam starts a new active team for a competition event with the leader
// as its first member. The generated join code is unique across all teams.
func (s *TeamService) CreateTeam(leaderID, eventID, name string) (*models.Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrValidation)
	}
	var team *models.Team
	err := s.store.Update(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if !event.IsCompetition {
			return fmt.Errorf("%w: event does not support team registration", ErrInvalidState)
		}
		if d.ActiveTeamForUser(leaderID, eventID) != nil {
			return fmt.Errorf("%w: already part of a team for this event", ErrDuplicate)
		}
		record := &models.Team{
			ID:        uuid.New().String(),
			Name:      name,
			LeaderID:  leaderID,
			EventID:   eventID,
			Members:   []string{leaderID},
			Status:    models.TeamActive,
			TeamCode:  newTeamCode(d),
			CreatedAt: time.Now(),
		}
		d.Teams[record.ID] = record
		team = cloneTeam(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// newTeamCode derives a short uppercase join code and retries on the unlikely
// collision.
func newTeamCode(d *store.Data) string {
	for {
		code := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
		if !d.TeamCodeTaken(code) {
			return code
		}
	}
}

// JoinTeam adds the user to the active team matching the join code. The code
// match is case-insensitive. Users already in a team for that event are
// rejected, as are joins beyond the event's team size cap (default 4).
func (s *TeamService) JoinTeam(userID, code string) (*models.Team, error) {
	var team *models.Team
	err := s.store.Update(func(d *store.Data) error {
		t := d.TeamByCode(code)
		if t == nil {
			return fmt.Errorf("%w: invalid team code", ErrNotFound)
		}
		if d.TeamForUser(userID, t.EventID) != nil {
			return fmt.Errorf("%w: already part of a team for this event", ErrDuplicate)
		}
		sizeMax := defaultTeamSizeMax
		if event, ok := d.Events[t.EventID]; ok && event.TeamSizeMax > 0 {
			sizeMax = event.TeamSizeMax
		}
		if len(t.Members) >= sizeMax {
			return fmt.Errorf("%w: team is full", ErrCapacityExceeded)
		}
		t.Members = append(t.Members, userID)
		team = cloneTeam(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// TeamMembership describes one of a user's teams with its event context.
type TeamMembership struct {
	Team     models.Team  `json:"team"`
	Event    models.Event `json:"event"`
	IsLeader bool         `json:"is_leader"`
}

// ForUser lists every team the user belongs to.
func (s *TeamService) ForUser(userID string) ([]TeamMembership, error) {
	var out []TeamMembership
	err := s.store.View(func(d *store.Data) error {
		for _, t := range d.TeamsForUser(userID) {
			m := TeamMembership{Team: *cloneTeam(t), IsLeader: t.LeaderID == userID}
			if event, ok := d.Events[t.EventID]; ok {
				m.Event = *event
			}
			out = append(out, m)
		}
		return nil
	})
	return out, err
}

// Submit records the team's competition entry for the event. A second submit
// for the same team overwrites content, description and timestamp instead of
// creating a new record.
func (s *TeamService) Submit(userID, eventID, submissionType, content, description string) (*models.Submission, error) {
	var sub *models.Submission
	err := s.store.Update(func(d *store.Data) error {
		if _, ok := d.Events[eventID]; !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		team := d.TeamForUser(userID, eventID)
		if team == nil {
			return fmt.Errorf("%w: must be part of a team to submit", ErrInvalidState)
		}
		if existing := d.SubmissionForTeam(team.ID, eventID); existing != nil {
			existing.Content = content
			existing.Description = description
			existing.SubmittedAt = time.Now()
			clone := *existing
			sub = &clone
			return nil
		}
		record := &models.Submission{
			ID:             uuid.New().String(),
			TeamID:         team.ID,
			EventID:        eventID,
			SubmissionType: submissionType,
			Content:        content,
			Description:    description,
			Status:         models.SubmissionSubmitted,
			SubmittedAt:    time.Now(),
		}
		d.Submissions[record.ID] = record
		clone := *record
		sub = &clone
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

type EvaluateInput struct {
	Score    float64 `json:"score" validate:"min=0,max=100"`
	Feedback string  `json:"feedback"`
}

// Evaluate scores a submission and recomputes the rank of every evaluated
// submission of that event: sort by score descending, rank is the 1-based
// position. Ties go to the earlier submission, so re-running an evaluation
// over the same scores never reshuffles ranks.
func (s *TeamService) Evaluate(organizerID, submissionID string, in EvaluateInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.store.Update(func(d *store.Data) error {
		sub, ok := d.Submissions[submissionID]
		if !ok {
			return fmt.Errorf("%w: submission", ErrNotFound)
		}
		event, ok := d.Events[sub.EventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		score := in.Score
		sub.Score = &score
		sub.Status = models.SubmissionEvaluated
		sub.Feedback = in.Feedback

		for i, es := range d.EvaluatedSubmissions(sub.EventID) {
			rank := i + 1
			es.Rank = &rank
		}
		return nil
	})
}

// LeaderboardEntry pairs an evaluated submission with its team.
type LeaderboardEntry struct {
	Submission models.Submission `json:"submission"`
	Team       models.Team       `json:"team"`
}

// Leaderboard returns the evaluated submissions of an event with their teams,
// highest score first.
func (s *TeamService) Leaderboard(eventID string) ([]LeaderboardEntry, error) {
	var out []LeaderboardEntry
	err := s.store.View(func(d *store.Data) error {
		if _, ok := d.Events[eventID]; !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		for _, sub := range d.EvaluatedSubmissions(eventID) {
			team, ok := d.Teams[sub.TeamID]
			if !ok {
				continue
			}
			out = append(out, LeaderboardEntry{Submission: *sub, Team: *cloneTeam(team)})
		}
		return nil
	})
	return out, err
}

// SubmissionReview is a submission with team context for organizer review.
type SubmissionReview struct {
	Submission models.Submission `json:"submission"`
	Team       models.Team       `json:"team"`
	Members    []models.User     `json:"members"`
}

// SubmissionsForEvent lists every submission of the organizer's competition
// with team and member details, newest first.
func (s *TeamService) SubmissionsForEvent(organizerID, eventID string) ([]SubmissionReview, error) {
	var out []SubmissionReview
	err := s.store.View(func(d *store.Data) error {
		event, ok := d.Events[eventID]
		if !ok {
			return fmt.Errorf("%w: event", ErrNotFound)
		}
		if event.OrganizerID != organizerID {
			return fmt.Errorf("%w: not the event organizer", ErrUnauthorized)
		}
		if !event.IsCompetition {
			return fmt.Errorf("%w: event is not a team competition", ErrInvalidState)
		}
		for _, sub := range d.SubmissionsForEvent(eventID) {
			team, ok := d.Teams[sub.TeamID]
			if !ok {
				continue
			}
			review := SubmissionReview{Submission: *sub, Team: *cloneTeam(team)}
			for _, memberID := range team.Members {
				if u, ok := d.Users[memberID]; ok {
					review.Members = append(review.Members, *u)
				}
			}
			out = append(out, review)
		}
		return nil
	})
	return out, err
}
