package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petpal/internal/domain/entity"
	"petpal/pkg/errors"
)

func TestSyncUserCreatesAccountOnFirstLogin(t *testing.T) {
	userRepo := newMemUserRepo()
	identity := &fakeIdentity{uid: "fb-new", email: "new@petpal.shop", name: "Newbie"}
	uc := NewAuthUseCase(userRepo, identity)

	user, created, err := uc.SyncUser(context.Background(), "token")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, entity.DefaultCity, user.City)
	assert.Equal(t, entity.DefaultAvatarAssetID, user.Avatar.AssetID)

	again, created, err := uc.SyncUser(context.Background(), "token")
	require.NoError(t, err)
	assert.False(t, created, "second login resolves the same account")
	assert.Equal(t, user.ID, again.ID)
}

func TestSyncUserNameFallsBackToEmail(t *testing.T) {
	userRepo := newMemUserRepo()
	identity := &fakeIdentity{uid: "fb-x", email: "pat@petpal.shop"}
	uc := NewAuthUseCase(userRepo, identity)

	user, _, err := uc.SyncUser(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "pat", user.Name)
}

func TestSyncUserRejections(t *testing.T) {
	userRepo := newMemUserRepo()
	identity := &fakeIdentity{verifyErr: fmt.Errorf("token expired")}
	uc := NewAuthUseCase(userRepo, identity)

	_, _, err := uc.SyncUser(context.Background(), "")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"), "empty token")

	_, _, err = uc.SyncUser(context.Background(), "bad")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"), "failed verification")
}

func TestSyncUserDeactivatedAccount(t *testing.T) {
	userRepo := newMemUserRepo()
	banned := seedUser(userRepo, "banned", "Banned", entity.RoleUser)
	banned.Active = false

	identity := &fakeIdentity{uid: banned.FirebaseUID, email: banned.Email}
	uc := NewAuthUseCase(userRepo, identity)

	_, _, err := uc.SyncUser(context.Background(), "token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestGetByFirebaseUID(t *testing.T) {
	userRepo := newMemUserRepo()
	seedUser(userRepo, "alice", "Alice", entity.RoleUser)
	uc := NewAuthUseCase(userRepo, &fakeIdentity{})

	user, err := uc.GetByFirebaseUID(context.Background(), "fb-alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.ID)

	_, err = uc.GetByFirebaseUID(context.Background(), "fb-ghost")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"), "unknown uid maps to unauthorized, not not-found")
}

func TestRequireRole(t *testing.T) {
	admin := &entity.User{Role: entity.RoleAdmin}
	user := &entity.User{Role: entity.RoleUser}

	assert.NoError(t, RequireRole(admin, entity.RoleAdmin))
	assert.NoError(t, RequireRole(user, entity.RoleUser, entity.RoleAdmin))

	err := RequireRole(user, entity.RoleAdmin)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = RequireRole(nil, entity.RoleAdmin)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
