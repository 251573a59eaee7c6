package entity

import (
	"time"
)

// Role is the closed set of account roles. Free-text comparison is
// deliberately avoided; parse through ParseRole.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

const (
	DefaultAvatarAssetID = "avatars/default_avatar"
	DefaultAvatarURL     = "https://storage.googleapis.com/petpal-assets/public/avatars/default_avatar.png"

	DefaultCity    = "Metro Manila (NCR)"
	DefaultCountry = "Philippines"
)

type Avatar struct {
	AssetID string `json:"asset_id" firestore:"assetId"`
	URL     string `json:"url" firestore:"url"`
}

// User is the local account linked to an externally verified identity.
// FirebaseUID and Email are each globally unique.
type User struct {
	ID          string `json:"id" firestore:"id"`
	FirebaseUID string `json:"firebase_uid" firestore:"firebaseUid"`
	Email       string `json:"email" firestore:"email"`
	Name        string `json:"name" firestore:"name"`
	Role        Role   `json:"role" firestore:"role"`
	Active      bool   `json:"active" firestore:"active"`

	// Default shipping details, prefilled into the checkout form.
	FullName        string `json:"full_name,omitempty" firestore:"fullName,omitempty"`
	PhoneNumber     string `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty" firestore:"shippingAddress,omitempty"`
	City            string `json:"city" firestore:"city"`
	Country         string `json:"country" firestore:"country"`

	Avatar Avatar `json:"avatar" firestore:"avatar"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) HasDefaultAvatar() bool {
	return u.Avatar.AssetID == "" || u.Avatar.AssetID == DefaultAvatarAssetID
}
