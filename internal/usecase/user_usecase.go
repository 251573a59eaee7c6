package usecase

import (
	"bytes"
	"context"
	"time"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/pkg/errors"
	"petpal/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	identity IdentityClient
	storage  AssetStorage
}

func NewUserUseCase(userRepo repository.UserRepository, identity IdentityClient, storage AssetStorage) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		identity: identity,
		storage:  storage,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Name            string
	Email           string
	FullName        string
	PhoneNumber     string
	ShippingAddress string
	City            string
	Country         string
	Avatar          string // base64 image payload, optional
}

// UpdateProfile patches the local account and mirrors name/email/avatar
// changes into the identity provider so sign-in stays consistent.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, errors.Conflict("Email is already in use", nil)
		}
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.ShippingAddress != "" {
		user.ShippingAddress = input.ShippingAddress
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.Country != "" {
		user.Country = input.Country
	}

	if input.Avatar != "" {
		if err := uc.replaceAvatar(ctx, user, input.Avatar); err != nil {
			return nil, err
		}
	}

	if err := uc.identity.UpdateUser(ctx, user.FirebaseUID, user.Email, user.Name, user.Avatar.URL); err != nil {
		return nil, errors.DependencyFailure("Failed to sync account with the identity provider", err)
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// replaceAvatar uploads the new image first, then drops the old asset.
// The shared default avatar is never deleted.
func (uc *UserUseCase) replaceAvatar(ctx context.Context, user *entity.User, payload string) error {
	contentType, data, err := decodeImagePayload(payload)
	if err != nil {
		return err
	}

	assetID, url, err := uc.storage.Upload(ctx, bytes.NewReader(data), contentType, "avatars")
	if err != nil {
		return errors.DependencyFailure("Failed to upload avatar", err)
	}

	old := user.Avatar
	user.Avatar = entity.Avatar{AssetID: assetID, URL: url}

	if old.AssetID != "" && old.AssetID != entity.DefaultAvatarAssetID {
		if err := uc.storage.Delete(ctx, old.AssetID); err != nil {
			logger.Warn("Failed to delete previous avatar %s: %v", old.AssetID, err)
		}
	}
	return nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	users, total, err := uc.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []*entity.User{}
	}
	return users, total, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateRoleStatusInput struct {
	Role   string
	Active *bool
}

// UpdateRoleStatus changes a user's role and/or active flag. An admin can
// never deactivate their own account; lockout of the last admin through
// self-service is the failure mode this guards.
func (uc *UserUseCase) UpdateRoleStatus(ctx context.Context, adminID, targetID string, input UpdateRoleStatusInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.Role != "" {
		role, ok := entity.ParseRole(input.Role)
		if !ok {
			return nil, errors.BadRequest("Role must be either user or admin", nil)
		}
		user.Role = role
	}

	if input.Active != nil {
		if adminID == targetID && !*input.Active {
			return nil, errors.BadRequest("Cannot deactivate your own admin account", nil)
		}
		user.Active = *input.Active
	}

	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the account everywhere: identity provider record,
// avatar asset (unless shared default), then the local document.
func (uc *UserUseCase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := uc.identity.DeleteUser(ctx, user.FirebaseUID); err != nil {
		logger.Warn("Identity provider deletion failed for %s, continuing: %v", user.FirebaseUID, err)
	}

	if user.Avatar.AssetID != "" && !user.HasDefaultAvatar() {
		if err := uc.storage.Delete(ctx, user.Avatar.AssetID); err != nil {
			logger.Warn("Failed to delete avatar %s: %v", user.Avatar.AssetID, err)
		}
	}

	return uc.userRepo.Delete(ctx, userID)
}
