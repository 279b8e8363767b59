package auth

import "time"

// Admin is an operator account for the dashboard. Accounts are provisioned by
// the seeder with a default password and isSetup=false; the setup flow binds a
// contact email and a real password before normal logins are allowed.
type Admin struct {
	ID                        int64
	Username                  string
	PasswordHash              string
	Email                     *string
	PendingEmail              *string
	IsSetup                   bool
	VerificationCode          *string
	VerificationCodeExpiresAt *time.Time
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// HasValidCode reports whether code matches the stored (hashed) verification
// code. Presence and match only; expiry is checked separately so an expired
// but correct code can be reported as expired rather than invalid.
func (a *Admin) HasValidCode(code string) bool {
	if a.VerificationCode == nil {
		return false
	}
	return HashString(code) == *a.VerificationCode
}

// CodeExpired reports whether the stored code's expiry has passed at now.
func (a *Admin) CodeExpired(now time.Time) bool {
	return a.VerificationCodeExpiresAt == nil || now.After(*a.VerificationCodeExpiresAt)
}
