package authfix

import (
	"errors"
	"fmt"

	"supafix/internal/supabase"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// ResetPassword sets a new password for the first user whose email matches
// the target exactly. The password itself is validated by the auth service;
// a rejected update is surfaced as-is.
func ResetPassword(client *supabase.Client, email, newPassword string) error {
	users, err := client.AdminListUsers()
	if err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}

	var target *supabase.User
	for i := range users {
		if users[i].Email == email {
			target = &users[i]
			break
		}
	}

	if target == nil {
		return ErrUserNotFound
	}

	if _, err := uuid.Parse(target.ID); err != nil {
		return fmt.Errorf("matched record has invalid id %q", target.ID)
	}
	fmt.Printf("Found user ID: %s\n", target.ID)

	if _, err := client.AdminUpdateUser(target.ID, supabase.UserUpdate{Password: newPassword}); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}
