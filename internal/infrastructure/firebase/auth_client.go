package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken validates a Firebase ID token and returns the verified
// identity: uid plus the email and display-name claims.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, idToken string) (uid, email, name string, err error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", "", err
	}

	if v, ok := token.Claims["email"].(string); ok {
		email = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		name = v
	}

	return token.UID, email, name, nil
}

// UpdateUser pushes profile changes back to the identity provider. Empty
// arguments leave the corresponding field untouched.
func (f *FirebaseAuthClient) UpdateUser(ctx context.Context, uid, email, displayName, photoURL string) error {
	params := &auth.UserToUpdate{}
	changed := false

	if email != "" {
		params = params.Email(email)
		changed = true
	}
	if displayName != "" {
		params = params.DisplayName(displayName)
		changed = true
	}
	if photoURL != "" {
		params = params.PhotoURL(photoURL)
		changed = true
	}

	if !changed {
		return nil
	}

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *FirebaseAuthClient) DeleteUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}
