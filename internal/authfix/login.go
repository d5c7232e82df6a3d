package authfix

import (
	"fmt"
	"time"

	"supafix/internal/supabase"

	"github.com/golang-jwt/jwt/v5"
)

const tokenPreviewLen = 50

// CheckLogin attempts a password-grant login and reports the outcome to the
// console. Returns true iff the token endpoint accepted the credentials.
func CheckLogin(client *supabase.Client, email, password string) bool {
	fmt.Printf("Testing login for %s\n", email)

	resp, err := client.SignIn(email, password)
	if err != nil {
		fmt.Printf("❌ Login failed: %v\n", err)
		return false
	}

	fmt.Println("✅ Login successful!")
	fmt.Printf("Access Token: %s...\n", truncate(resp.AccessToken, tokenPreviewLen))
	fmt.Printf("User ID: %s\n", resp.User.ID)

	printTokenClaims(resp.AccessToken)
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// printTokenClaims shows what the access token carries. The decode is
// unverified, this is display for an operator, not authentication.
func printTokenClaims(accessToken string) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return
	}

	if role, ok := claims["role"].(string); ok {
		fmt.Printf("Token role: %s\n", role)
	}
	if exp, ok := claims["exp"].(float64); ok {
		fmt.Printf("Token expires: %s\n", time.Unix(int64(exp), 0).UTC().Format(time.RFC3339))
	}
}
