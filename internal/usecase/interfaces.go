package usecase

import (
	"context"
	"io"
)

// IdentityClient is the external identity collaborator. Credentials are
// verified there; this service never sees passwords.
type IdentityClient interface {
	VerifyToken(ctx context.Context, idToken string) (uid, email, name string, err error)
	UpdateUser(ctx context.Context, uid, email, displayName, photoURL string) error
	DeleteUser(ctx context.Context, uid string) error
}

// AssetStorage stores binary assets. The returned asset id is what Delete
// expects back.
type AssetStorage interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (assetID, url string, err error)
	Delete(ctx context.Context, assetID string) error
}

// Mailer dispatches transactional mail. One bounded attempt per call;
// callers decide whether a failure is fatal.
type Mailer interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) (deliveryID string, err error)
}
