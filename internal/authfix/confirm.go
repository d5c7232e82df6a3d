// Package authfix implements the repair operations the cmd tools expose:
// bulk email-confirmation fixing, admin password resets, and a login check.
package authfix

import (
	"fmt"
	"time"

	"supafix/internal/supabase"

	"github.com/google/uuid"
)

type ConfirmResult struct {
	Fixed            int
	AlreadyConfirmed int
	Errors           int
	Skipped          int
}

func (r ConfirmResult) Total() int {
	return r.Fixed + r.AlreadyConfirmed + r.Errors + r.Skipped
}

// ConfirmEmails marks every unconfirmed user as email-confirmed. A failed
// list fetch aborts the run; a failed update is counted and the loop moves
// on. Records without a usable UUID id are skipped so no update is ever
// issued against a malformed path.
func ConfirmEmails(client *supabase.Client) (ConfirmResult, error) {
	var result ConfirmResult

	fmt.Println("Fetching all users...")
	users, err := client.AdminListUsers()
	if err != nil {
		return result, fmt.Errorf("failed to fetch users: %w", err)
	}
	fmt.Printf("Found %d users\n", len(users))

	for _, u := range users {
		if _, err := uuid.Parse(u.ID); err != nil {
			fmt.Printf("⚠️  Skipping record with invalid id %q (email: %s)\n", u.ID, u.Email)
			result.Skipped++
			continue
		}

		if u.Confirmed() {
			fmt.Printf("✅ %s already confirmed\n", u.Email)
			result.AlreadyConfirmed++
			continue
		}

		fmt.Printf("Fixing user: %s\n", u.Email)
		update := supabase.UserUpdate{
			EmailConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if _, err := client.AdminUpdateUser(u.ID, update); err != nil {
			fmt.Printf("❌ Failed to fix %s: %v\n", u.Email, err)
			result.Errors++
			continue
		}

		fmt.Printf("✅ Fixed %s\n", u.Email)
		result.Fixed++
	}

	return result, nil
}
