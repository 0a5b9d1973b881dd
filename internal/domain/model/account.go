package model

import "github.com/shoetrack/shoetrack-ui/internal/domain/auth"

// PasswordRotationNotice is displayed on the account creation form.
const PasswordRotationNotice = "Non-admin users will be required to change their password every 90 days."

// Account is a user of the record server. Passwords are write-only.
type Account struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Role     auth.Role `json:"role"`
}

// CanDelete reports whether the account is offered a delete control.
func (a Account) CanDelete() bool { return a.Role != auth.RoleAdmin }

// CreateAccountRequest creates an account upstream.
type CreateAccountRequest struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     auth.Role `json:"role"`
}

// RoleUpdate changes one account's role.
type RoleUpdate struct {
	UserID  int64     `json:"user_id"`
	NewRole auth.Role `json:"new_role"`
}

// ResetPasswordRequest is what the password reset form collects.
// ConfirmPassword never leaves this service.
type ResetPasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"-"`
}
