package services

import (
	"strings"
	"testing"

	"campus-events/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	st := newTestStore()
	svc := NewUserService(st)

	user, err := svc.Create("alice", "alice@campus.local", "$2a$14$somebcrypthash", models.RoleStudent, "")
	require.NoError(t, err)
	assert.True(t, user.IsActive)

	_, err = svc.Create("alice2", "Alice@Campus.Local", "$2a$14$somebcrypthash", models.RoleStudent, "")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserCreateValidation(t *testing.T) {
	st := newTestStore()
	svc := NewUserService(st)

	_, err := svc.Create("bob", "not-an-email", "$2a$14$somebcrypthash", models.RoleStudent, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("", "bob@campus.local", "$2a$14$somebcrypthash", models.RoleStudent, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserLookup(t *testing.T) {
	st := newTestStore()
	svc := NewUserService(st)

	created, err := svc.Create("carol", "carol@campus.local", "$2a$14$somebcrypthash", models.RoleOrganizer, "CS")
	require.NoError(t, err)

	byEmail, err := svc.ByEmail(strings.ToUpper(created.Email))
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := svc.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", byID.Username)

	_, err = svc.ByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleActiveSkipsAdmins(t *testing.T) {
	st := newTestStore()
	svc := NewUserService(st)
	student := seedUser(t, st, models.RoleStudent)
	admin := seedUser(t, st, models.RoleAdmin)

	active, err := svc.ToggleActive(student.ID)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = svc.ToggleActive(student.ID)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = svc.ToggleActive(admin.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListExcludesAdmins(t *testing.T) {
	st := newTestStore()
	svc := NewUserService(st)
	seedUser(t, st, models.RoleStudent)
	seedUser(t, st, models.RoleOrganizer)
	seedUser(t, st, models.RoleAdmin)

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, models.RoleAdmin, u.Role)
	}
}
