package usecase

import (
	"context"
	"strings"
	"time"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/pkg/errors"
	"petpal/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	identity IdentityClient
}

func NewAuthUseCase(userRepo repository.UserRepository, identity IdentityClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		identity: identity,
	}
}

// SyncUser verifies the ID token against the identity provider and maps it
// to a local account, creating one on first sight. Returns the account and
// whether it was created by this call.
func (uc *AuthUseCase) SyncUser(ctx context.Context, idToken string) (*entity.User, bool, error) {
	if idToken == "" {
		return nil, false, errors.Unauthorized("No ID token provided", nil)
	}

	uid, email, name, err := uc.identity.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, false, errors.Unauthorized("Authentication failed. Token may be invalid", err)
	}

	user, err := uc.userRepo.GetByFirebaseUID(ctx, uid)
	if err == nil {
		if !user.Active {
			return nil, false, errors.Forbidden("Account has been deactivated", nil)
		}
		return user, false, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, false, err
	}

	if name == "" && email != "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	now := time.Now()
	user = &entity.User{
		FirebaseUID: uid,
		Email:       email,
		Name:        name,
		Role:        entity.RoleUser,
		Active:      true,
		City:        entity.DefaultCity,
		Country:     entity.DefaultCountry,
		Avatar: entity.Avatar{
			AssetID: entity.DefaultAvatarAssetID,
			URL:     entity.DefaultAvatarURL,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}

	logger.Info("New account created for %s", email)
	return user, true, nil
}

// GetByFirebaseUID resolves the local account behind a verified uid. Used
// by the auth middleware after token verification.
func (uc *AuthUseCase) GetByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByFirebaseUID(ctx, uid)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("User not found in our database", err)
		}
		return nil, err
	}

	if !user.Active {
		return nil, errors.Forbidden("Account has been deactivated", nil)
	}

	return user, nil
}

// RequireRole fails with Forbidden when the account's role is not in the
// allowed set. Unauthenticated callers must be rejected with Unauthorized
// before this point.
func RequireRole(user *entity.User, allowed ...entity.Role) error {
	if user == nil {
		return errors.Unauthorized("Authentication required", nil)
	}
	if !user.Role.In(allowed...) {
		return errors.Forbidden("Your role is not authorized to access this resource", nil)
	}
	return nil
}
