package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petpal/internal/domain/entity"
	"petpal/pkg/errors"
)

type userFixture struct {
	uc       *UserUseCase
	userRepo *memUserRepo
	identity *fakeIdentity
	storage  *fakeStorage
}

func newUserFixture() *userFixture {
	userRepo := newMemUserRepo()
	identity := &fakeIdentity{}
	storage := &fakeStorage{}

	seedUser(userRepo, "root", "Root", entity.RoleAdmin)
	seedUser(userRepo, "alice", "Alice", entity.RoleUser)

	return &userFixture{
		uc:       NewUserUseCase(userRepo, identity, storage),
		userRepo: userRepo,
		identity: identity,
		storage:  storage,
	}
}

func TestUpdateProfileFields(t *testing.T) {
	f := newUserFixture()

	user, err := f.uc.UpdateProfile(context.Background(), "alice", UpdateProfileInput{
		Name:        "Alicia",
		PhoneNumber: "0917",
		City:        "Cebu",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alicia", user.Name)
	assert.Equal(t, "0917", user.PhoneNumber)
	assert.Equal(t, "Cebu", user.City)
	assert.Equal(t, "alice@petpal.shop", user.Email, "untouched fields keep their values")
	assert.Contains(t, f.identity.updated, "fb-alice", "identity provider stays in sync")
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	f := newUserFixture()

	_, err := f.uc.UpdateProfile(context.Background(), "alice", UpdateProfileInput{
		Email: "root@petpal.shop",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestUpdateProfileAvatarReplacement(t *testing.T) {
	f := newUserFixture()

	// First custom avatar: the shared default must not be deleted.
	user, err := f.uc.UpdateProfile(context.Background(), "alice", UpdateProfileInput{
		Avatar: "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.storage.uploads)
	assert.Empty(t, f.storage.deleted)
	firstAsset := user.Avatar.AssetID

	// Second avatar replaces the first, which is now deletable.
	_, err = f.uc.UpdateProfile(context.Background(), "alice", UpdateProfileInput{
		Avatar: "d29ybGQ=",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, f.storage.uploads)
	assert.Equal(t, []string{firstAsset}, f.storage.deleted)
}

func TestUpdateProfileBadAvatarPayload(t *testing.T) {
	f := newUserFixture()

	_, err := f.uc.UpdateProfile(context.Background(), "alice", UpdateProfileInput{
		Avatar: "not!!valid##base64",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateRoleStatus(t *testing.T) {
	f := newUserFixture()
	active := false

	user, err := f.uc.UpdateRoleStatus(context.Background(), "root", "alice", UpdateRoleStatusInput{
		Role:   "admin",
		Active: &active,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.False(t, user.Active)
}

func TestUpdateRoleStatusRejectsSelfDeactivation(t *testing.T) {
	f := newUserFixture()
	active := false

	_, err := f.uc.UpdateRoleStatus(context.Background(), "root", "root", UpdateRoleStatusInput{
		Active: &active,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	persisted, _ := f.userRepo.GetByID(context.Background(), "root")
	assert.True(t, persisted.Active, "rejected change leaves the account untouched")
}

func TestUpdateRoleStatusSelfRoleChangeAllowed(t *testing.T) {
	f := newUserFixture()
	active := true

	// Reactivating or changing one's own role is fine; only
	// self-deactivation is blocked.
	_, err := f.uc.UpdateRoleStatus(context.Background(), "root", "root", UpdateRoleStatusInput{
		Active: &active,
	})
	assert.NoError(t, err)
}

func TestUpdateRoleStatusRejectsUnknownRole(t *testing.T) {
	f := newUserFixture()

	_, err := f.uc.UpdateRoleStatus(context.Background(), "root", "alice", UpdateRoleStatusInput{
		Role: "owner",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDeleteUserCascades(t *testing.T) {
	f := newUserFixture()

	_, err := f.uc.UpdateProfile(context.Background(), "alice", UpdateProfileInput{
		Avatar: "aGVsbG8=",
	})
	require.NoError(t, err)
	customAsset := f.userRepo.users["alice"].Avatar.AssetID

	require.NoError(t, f.uc.DeleteUser(context.Background(), "alice"))

	assert.Equal(t, "fb-alice", f.identity.deletedUID)
	assert.Contains(t, f.storage.deleted, customAsset)
	_, err = f.userRepo.GetByID(context.Background(), "alice")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteUserKeepsDefaultAvatar(t *testing.T) {
	f := newUserFixture()
	f.userRepo.users["alice"].Avatar = entity.Avatar{
		AssetID: entity.DefaultAvatarAssetID,
		URL:     entity.DefaultAvatarURL,
	}

	require.NoError(t, f.uc.DeleteUser(context.Background(), "alice"))
	assert.Empty(t, f.storage.deleted, "the shared default asset is never deleted")
}
