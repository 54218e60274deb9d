package services

import (
	"testing"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGroupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	return db
}

func TestCreateGroupAddsAdminMember(t *testing.T) {
	setupGroupTestDB(t)

	group, err := CreateGroup(7, "Martin Family", "")
	require.NoError(t, err)
	assert.Equal(t, "trial", group.Plan)
	assert.Equal(t, uint(7), group.OwnerUserID)

	members, err := ListMembers(group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, uint(7), members[0].UserID)
	assert.Equal(t, "admin", members[0].Role)

	ok, err := IsMember(7, group.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsMember(8, group.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListGroupsForUser(t *testing.T) {
	setupGroupTestDB(t)

	g1, err := CreateGroup(7, "Martin Family", "")
	require.NoError(t, err)
	_, err = CreateGroup(8, "Chen Family", "")
	require.NoError(t, err)

	groups, err := ListGroupsForUser(7)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, g1.ID, groups[0].ID)
}

func TestInviteAndAccept(t *testing.T) {
	setupGroupTestDB(t)

	group, err := CreateGroup(7, "Martin Family", "")
	require.NoError(t, err)

	invite, err := InviteCaregiver(group.ID, 7, "aide@example.com", "")
	require.NoError(t, err)
	assert.NotEmpty(t, invite.Code)
	assert.Equal(t, "caregiver", invite.Role)
	assert.True(t, invite.ExpiresAt.After(time.Now()))

	member, err := AcceptInvite(9, invite.Code)
	require.NoError(t, err)
	assert.Equal(t, group.ID, member.GroupID)
	assert.Equal(t, "caregiver", member.Role)

	ok, err := IsMember(9, group.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// A code is single-use.
	_, err = AcceptInvite(10, invite.Code)
	assert.Error(t, err)
}

func TestAcceptInviteExpired(t *testing.T) {
	db := setupGroupTestDB(t)

	group, err := CreateGroup(7, "Martin Family", "")
	require.NoError(t, err)

	invite := models.GroupInvite{
		GroupID:   group.ID,
		Email:     "aide@example.com",
		Code:      "stale-code",
		Role:      "caregiver",
		InvitedBy: 7,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&invite).Error)

	_, err = AcceptInvite(9, "stale-code")
	assert.Error(t, err)
}

func TestAcceptInviteUnknownCode(t *testing.T) {
	setupGroupTestDB(t)

	_, err := AcceptInvite(9, "no-such-code")
	assert.Error(t, err)
}
