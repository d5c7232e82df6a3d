package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"supafix/internal/config"
	"supafix/internal/database"

	"github.com/joho/godotenv"
)

// Direct-database audit of auth.users, for when the admin API is not
// reachable. With -email and -reset-password it repairs a password by
// writing the bcrypt hash straight into the auth schema.
func main() {
	email := flag.String("email", "", "email of the user to repair")
	resetPassword := flag.String("reset-password", "", "new password to write directly into auth.users")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()
	if err := cfg.ValidateDatabase(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := database.NewConnection(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if *resetPassword != "" {
		if *email == "" {
			log.Fatal("-reset-password requires -email")
		}
		rows, err := db.SetUserPassword(ctx, *email, *resetPassword)
		if err != nil {
			fmt.Printf("❌ Failed to reset password: %v\n", err)
			return
		}
		if rows == 0 {
			fmt.Printf("❌ User with email %s not found\n", *email)
			return
		}
		fmt.Printf("✅ Password updated for %s\n", *email)
		return
	}

	users, err := db.ListAuthUsers(ctx)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Printf("Total users in auth schema: %d\n\n", len(users))
	if len(users) == 0 {
		fmt.Println("⚠️  No users found!")
		return
	}

	unconfirmed := 0
	for i, u := range users {
		status := "confirmed"
		if !u.Confirmed() {
			status = "NOT CONFIRMED"
			unconfirmed++
		}
		fmt.Printf("%d. %s (%s)\n", i+1, u.Email, status)
		fmt.Printf("   ID: %s\n\n", u.ID)
	}

	if unconfirmed > 0 {
		fmt.Printf("⚠️  %d user(s) unconfirmed - run fix_auth to repair\n", unconfirmed)
	}
}
