package auth

import "fmt"

// Causes an identity provider can classify a failed sign-in with.
const (
	CauseCredentialsSignin = "CredentialsSignin"
	CauseConfiguration     = "Configuration"
	CauseAccessDenied      = "AccessDenied"
)

// AuthError is a classified sign-in failure. Errors of any other type coming
// out of a Provider are unclassified.
type AuthError struct {
	Cause string
	Err   error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Cause, e.Err)
	}
	return "auth: " + e.Cause
}

func (e *AuthError) Unwrap() error { return e.Err }
