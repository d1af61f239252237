package commands

import (
	"context"
	"time"

	"dealhub/internal/pkg/errs"
)

var (
	ErrUnauthorized  = errs.New("unauthorized")
	ErrAdminDisabled = errs.New("admin authentication is not configured")
)

type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

type CredentialVerifier interface {
	Configured() bool
	Matches(candidate string) bool
}

type SessionIssuer interface {
	IssueAdminSession() (string, time.Time, error)
	VerifyAdminSession(token string) error
}

type AdminCommands interface {
	// Enabled is false when no admin credential is configured; every admin
	// route is then open.
	Enabled() bool
	Login(ctx context.Context, password string) (*AdminSession, error)
	// Authorize accepts the shared secret itself or a session token.
	Authorize(ctx context.Context, credential string) error
}

type adminUseCaseImpl struct {
	verifier CredentialVerifier
	sessions SessionIssuer
}

func NewAdminUseCase(verifier CredentialVerifier, sessions SessionIssuer) AdminCommands {
	return &adminUseCaseImpl{verifier: verifier, sessions: sessions}
}

func (uc *adminUseCaseImpl) Enabled() bool {
	return uc.verifier.Configured()
}

func (uc *adminUseCaseImpl) Login(_ context.Context, password string) (*AdminSession, error) {
	if !uc.Enabled() {
		return nil, ErrAdminDisabled
	}
	if !uc.verifier.Matches(password) {
		return nil, ErrUnauthorized
	}
	token, expiresAt, err := uc.sessions.IssueAdminSession()
	if err != nil {
		return nil, errs.Wrap(err, "issue admin session")
	}
	return &AdminSession{Token: token, ExpiresAt: expiresAt}, nil
}

func (uc *adminUseCaseImpl) Authorize(_ context.Context, credential string) error {
	if !uc.Enabled() {
		return nil
	}
	if credential == "" {
		return ErrUnauthorized
	}
	if uc.verifier.Matches(credential) {
		return nil
	}
	if err := uc.sessions.VerifyAdminSession(credential); err != nil {
		return ErrUnauthorized
	}
	return nil
}
