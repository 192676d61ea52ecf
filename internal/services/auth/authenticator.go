package auth

import (
	"context"
	"errors"
	"log/slog"
)

const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgSomethingWrong     = "Something went wrong"

	// DashboardPath is where a successful sign-in lands.
	DashboardPath = "/dashboard"
)

// LoginOutcome is either a Message to show on the login form or a signed-in
// Identity with the Redirect to follow.
type LoginOutcome struct {
	Message  string
	Identity *Identity
	Redirect string
}

type Authenticator struct {
	provider Provider
}

func NewAuthenticator(provider Provider) *Authenticator {
	return &Authenticator{provider: provider}
}

// Authenticate signs in with the credentials strategy. Classified failures
// become a form message; any other error is returned as is.
// prev is the message shown after the previous attempt, if any.
func (a *Authenticator) Authenticate(ctx context.Context, prev string, creds Credentials) (LoginOutcome, error) {
	id, err := a.provider.SignIn(ctx, StrategyCredentials, creds)
	if err == nil {
		slog.InfoContext(ctx, "signed in", "user_id", id.UserID)
		return LoginOutcome{Identity: id, Redirect: DashboardPath}, nil
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		return LoginOutcome{}, err
	}
	slog.InfoContext(ctx, "sign in rejected", "cause", authErr.Cause, "retry", prev != "")
	switch authErr.Cause {
	case CauseCredentialsSignin:
		return LoginOutcome{Message: MsgInvalidCredentials}, nil
	default:
		return LoginOutcome{Message: MsgSomethingWrong}, nil
	}
}
