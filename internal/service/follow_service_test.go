package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_FollowIsIdempotent(t *testing.T) {
	f := setup(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	require.NoError(t, f.follow.Follow(alice.ID, "bob"))
	require.NoError(t, f.follow.Follow(alice.ID, "bob"))

	assert.EqualValues(t, 1, countFollows(t, alice.ID, bob.ID))
}

func TestFollowService_SelfFollowIsSkipped(t *testing.T) {
	f := setup(t)
	alice := f.user(t, "alice")

	require.NoError(t, f.follow.Follow(alice.ID, "alice"))

	assert.EqualValues(t, 0, countFollows(t, alice.ID, alice.ID))
}

func TestFollowService_FollowUnknownAuthor(t *testing.T) {
	f := setup(t)
	alice := f.user(t, "alice")

	err := f.follow.Follow(alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowService_Unfollow(t *testing.T) {
	f := setup(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	require.NoError(t, f.follow.Follow(alice.ID, "bob"))
	require.NoError(t, f.follow.Unfollow(alice.ID, "bob"))

	assert.EqualValues(t, 0, countFollows(t, alice.ID, bob.ID))
}

func TestFollowService_UnfollowAbsentRelation(t *testing.T) {
	f := setup(t)
	alice := f.user(t, "alice")
	f.user(t, "bob")

	err := f.follow.Unfollow(alice.ID, "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowService_IsFollowing(t *testing.T) {
	f := setup(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	following, err := f.follow.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	require.NoError(t, f.follow.Follow(alice.ID, "bob"))

	following, err = f.follow.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// Unauthenticated viewers never follow anyone.
	following, err = f.follow.IsFollowing(0, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
