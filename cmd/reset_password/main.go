package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"supafix/internal/authfix"
	"supafix/internal/config"
	"supafix/internal/supabase"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "email of the user to reset")
	password := flag.String("password", "", "new password to set")
	create := flag.Bool("create", false, "create the account (email pre-confirmed) if no user matches")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: reset_password -email <email> -password <new-password> [-create]")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()
	if err := cfg.ValidateAdmin(); err != nil {
		log.Fatal(err)
	}

	client := supabase.NewClient(cfg)

	fmt.Printf("Resetting password for %s\n", *email)

	err := authfix.ResetPassword(client, *email, *password)
	if errors.Is(err, authfix.ErrUserNotFound) && *create {
		fmt.Printf("User %s not found, creating account...\n", *email)
		user, createErr := client.AdminCreateUser(*email, *password, nil)
		if createErr != nil {
			fmt.Printf("❌ Failed to create user: %v\n", createErr)
			return
		}
		fmt.Printf("✅ Created user %s (ID: %s)\n", *email, user.ID)
		err = nil
	}

	if errors.Is(err, authfix.ErrUserNotFound) {
		fmt.Printf("❌ User with email %s not found\n", *email)
		return
	}
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Printf("✅ Password reset for %s\n", *email)
	fmt.Println("\nYou can now login with:")
	fmt.Printf("   Email: %s\n", *email)
	fmt.Printf("   Password: %s\n", *password)
}
