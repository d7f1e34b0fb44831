package services

import (
	"strings"
	"testing"

	"campus-events/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCompetition(t *testing.T, svc *TeamService) (*models.Event, *models.User) {
	t.Helper()
	st := svc.store
	organizer := seedUser(t, st, models.RoleOrganizer)
	event := seedEvent(t, st, organizer.ID, func(e *models.Event) {
		e.IsCompetition = true
	})
	return event, organizer
}

func TestCreateTeamRequiresCompetition(t *testing.T) {
	st := newTestStore()
	organizer := seedUser(t, st, models.RoleOrganizer)
	student := seedUser(t, st, models.RoleStudent)
	svc := NewTeamService(st)

	event := seedEvent(t, st, organizer.ID, nil)
	_, err := svc.CreateTeam(student.ID, event.ID, "Lone Wolves")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCreateTeamGeneratesJoinCode(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)

	team, err := svc.CreateTeam(leader.ID, event.ID, "Code Crafters")
	require.NoError(t, err)
	assert.Len(t, team.TeamCode, 6)
	assert.Equal(t, strings.ToUpper(team.TeamCode), team.TeamCode)
	assert.Equal(t, []string{leader.ID}, team.Members)
	assert.Equal(t, models.TeamActive, team.Status)
}

func TestCreateTeamRejectsSecondTeam(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)

	_, err := svc.CreateTeam(leader.ID, event.ID, "First")
	require.NoError(t, err)
	_, err = svc.CreateTeam(leader.ID, event.ID, "Second")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateTeamRequiresName(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)

	_, err := svc.CreateTeam(leader.ID, event.ID, "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJoinTeamIsCaseInsensitive(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)
	mate := seedUser(t, st, models.RoleStudent)

	team, err := svc.CreateTeam(leader.ID, event.ID, "Mixed Case")
	require.NoError(t, err)

	joined, err := svc.JoinTeam(mate.ID, " "+strings.ToLower(team.TeamCode)+" ")
	require.NoError(t, err)
	assert.True(t, joined.HasMember(mate.ID))
}

func TestJoinTeamRejectsUnknownCode(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	student := seedUser(t, st, models.RoleStudent)

	_, err := svc.JoinTeam(student.ID, "NOPE99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinTeamRejectsSecondMembership(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leaderA := seedUser(t, st, models.RoleStudent)
	leaderB := seedUser(t, st, models.RoleStudent)

	_, err := svc.CreateTeam(leaderA.ID, event.ID, "Alpha")
	require.NoError(t, err)
	teamB, err := svc.CreateTeam(leaderB.ID, event.ID, "Beta")
	require.NoError(t, err)

	_, err = svc.JoinTeam(leaderA.ID, teamB.TeamCode)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestJoinTeamDefaultSizeCap(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)

	team, err := svc.CreateTeam(leader.ID, event.ID, "Full House")
	require.NoError(t, err)

	// No explicit cap on the event, so membership stops at four.
	for i := 0; i < 3; i++ {
		mate := seedUser(t, st, models.RoleStudent)
		_, err = svc.JoinTeam(mate.ID, team.TeamCode)
		require.NoError(t, err)
	}
	extra := seedUser(t, st, models.RoleStudent)
	_, err = svc.JoinTeam(extra.ID, team.TeamCode)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestJoinTeamEventSizeCap(t *testing.T) {
	st := newTestStore()
	organizer := seedUser(t, st, models.RoleOrganizer)
	svc := NewTeamService(st)

	event := seedEvent(t, st, organizer.ID, func(e *models.Event) {
		e.IsCompetition = true
		e.TeamSizeMax = 2
	})
	leader := seedUser(t, st, models.RoleStudent)
	team, err := svc.CreateTeam(leader.ID, event.ID, "Duo")
	require.NoError(t, err)

	mate := seedUser(t, st, models.RoleStudent)
	_, err = svc.JoinTeam(mate.ID, team.TeamCode)
	require.NoError(t, err)

	extra := seedUser(t, st, models.RoleStudent)
	_, err = svc.JoinTeam(extra.ID, team.TeamCode)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestSubmitOverwritesExisting(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)
	_, err := svc.CreateTeam(leader.ID, event.ID, "Shippers")
	require.NoError(t, err)

	first, err := svc.Submit(leader.ID, event.ID, "github", "https://github.com/a/b", "v1")
	require.NoError(t, err)
	firstID := first.ID

	second, err := svc.Submit(leader.ID, event.ID, "github", "https://github.com/a/b2", "v2")
	require.NoError(t, err)
	assert.Equal(t, firstID, second.ID)
	assert.Equal(t, "https://github.com/a/b2", second.Content)
	assert.Equal(t, "v2", second.Description)

	subs, err := svc.SubmissionsForEvent(event.OrganizerID, event.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubmitRequiresTeam(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	student := seedUser(t, st, models.RoleStudent)

	_, err := svc.Submit(student.ID, event.ID, "github", "https://github.com/a/b", "")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestEvaluateRanksByScore(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, organizer := seedCompetition(t, svc)

	var subIDs []string
	for _, score := range []float64{70, 95, 80} {
		leader := seedUser(t, st, models.RoleStudent)
		_, err := svc.CreateTeam(leader.ID, event.ID, "Team "+leader.Username)
		require.NoError(t, err)
		sub, err := svc.Submit(leader.ID, event.ID, "github", "https://github.com/x/y", "")
		require.NoError(t, err)
		subIDs = append(subIDs, sub.ID)
		require.NoError(t, svc.Evaluate(organizer.ID, sub.ID, EvaluateInput{Score: score}))
	}

	board, err := svc.Leaderboard(event.ID)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, subIDs[1], board[0].Submission.ID)
	assert.Equal(t, subIDs[2], board[1].Submission.ID)
	assert.Equal(t, subIDs[0], board[2].Submission.ID)
	for i, entry := range board {
		require.NotNil(t, entry.Submission.Rank)
		assert.Equal(t, i+1, *entry.Submission.Rank)
		assert.Equal(t, models.SubmissionEvaluated, entry.Submission.Status)
	}
}

func TestReEvaluateRecomputesRanks(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, organizer := seedCompetition(t, svc)

	var subIDs []string
	for _, score := range []float64{90, 60} {
		leader := seedUser(t, st, models.RoleStudent)
		_, err := svc.CreateTeam(leader.ID, event.ID, "Team "+leader.Username)
		require.NoError(t, err)
		sub, err := svc.Submit(leader.ID, event.ID, "file", "report.pdf", "")
		require.NoError(t, err)
		subIDs = append(subIDs, sub.ID)
		require.NoError(t, svc.Evaluate(organizer.ID, sub.ID, EvaluateInput{Score: score}))
	}

	require.NoError(t, svc.Evaluate(organizer.ID, subIDs[1], EvaluateInput{Score: 100}))

	board, err := svc.Leaderboard(event.ID)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, subIDs[1], board[0].Submission.ID)
	assert.Equal(t, 1, *board[0].Submission.Rank)
	assert.Equal(t, 2, *board[1].Submission.Rank)
}

func TestEvaluateTiedScoresKeepStableRanks(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, organizer := seedCompetition(t, svc)

	var subIDs []string
	for i := 0; i < 2; i++ {
		leader := seedUser(t, st, models.RoleStudent)
		_, err := svc.CreateTeam(leader.ID, event.ID, "Team "+leader.Username)
		require.NoError(t, err)
		sub, err := svc.Submit(leader.ID, event.ID, "github", "https://github.com/x/y", "")
		require.NoError(t, err)
		subIDs = append(subIDs, sub.ID)
		require.NoError(t, svc.Evaluate(organizer.ID, sub.ID, EvaluateInput{Score: 50}))
	}

	// Ties go to the earlier submission, and re-running the evaluation with
	// the same score must never reshuffle the ranks.
	for i := 0; i < 100; i++ {
		require.NoError(t, svc.Evaluate(organizer.ID, subIDs[0], EvaluateInput{Score: 50}))
		board, err := svc.Leaderboard(event.ID)
		require.NoError(t, err)
		require.Len(t, board, 2)
		require.Equal(t, subIDs[0], board[0].Submission.ID, "iteration %d", i)
		require.Equal(t, 1, *board[0].Submission.Rank, "iteration %d", i)
		require.Equal(t, 2, *board[1].Submission.Rank, "iteration %d", i)
	}
}

func TestJoinTeamReturnsDetachedCopy(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)
	mate := seedUser(t, st, models.RoleStudent)

	team, err := svc.CreateTeam(leader.ID, event.ID, "Originals")
	require.NoError(t, err)

	joined, err := svc.JoinTeam(mate.ID, team.TeamCode)
	require.NoError(t, err)
	joined.Members[0] = "intruder"
	joined.Name = "Renamed"

	memberships, err := svc.ForUser(leader.ID)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, "Originals", memberships[0].Team.Name)
	assert.Equal(t, []string{leader.ID, mate.ID}, memberships[0].Team.Members)
}

func TestSubmitReturnsDetachedCopy(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, _ := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)
	_, err := svc.CreateTeam(leader.ID, event.ID, "Detachers")
	require.NoError(t, err)

	sub, err := svc.Submit(leader.ID, event.ID, "github", "https://github.com/a/b", "v1")
	require.NoError(t, err)
	sub.Content = "tampered"

	subs, err := svc.SubmissionsForEvent(event.OrganizerID, event.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "https://github.com/a/b", subs[0].Submission.Content)
}

func TestEvaluateValidation(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, organizer := seedCompetition(t, svc)
	leader := seedUser(t, st, models.RoleStudent)
	_, err := svc.CreateTeam(leader.ID, event.ID, "Outliers")
	require.NoError(t, err)
	sub, err := svc.Submit(leader.ID, event.ID, "github", "https://github.com/x/y", "")
	require.NoError(t, err)

	err = svc.Evaluate(organizer.ID, sub.ID, EvaluateInput{Score: 150})
	assert.ErrorIs(t, err, ErrValidation)

	other := seedUser(t, st, models.RoleOrganizer)
	err = svc.Evaluate(other.ID, sub.ID, EvaluateInput{Score: 50})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSubmissionsForEventChecksOwnership(t *testing.T) {
	st := newTestStore()
	svc := NewTeamService(st)
	event, organizer := seedCompetition(t, svc)
	other := seedUser(t, st, models.RoleOrganizer)

	_, err := svc.SubmissionsForEvent(other.ID, event.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SubmissionsForEvent(organizer.ID, event.ID)
	assert.NoError(t, err)

	plain := seedEvent(t, st, organizer.ID, nil)
	_, err = svc.SubmissionsForEvent(organizer.ID, plain.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}
