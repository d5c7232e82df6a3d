package main

import (
	"fmt"
	"log"
	"strings"

	"supafix/internal/authfix"
	"supafix/internal/config"
	"supafix/internal/supabase"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()
	if err := cfg.ValidateAdmin(); err != nil {
		log.Fatal(err)
	}

	client := supabase.NewClient(cfg)

	result, err := authfix.ConfirmEmails(client)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("Summary:")
	fmt.Printf("  Fixed: %d users\n", result.Fixed)
	fmt.Printf("  Already confirmed: %d users\n", result.AlreadyConfirmed)
	if result.Skipped > 0 {
		fmt.Printf("  Skipped (malformed): %d\n", result.Skipped)
	}
	if result.Errors > 0 {
		fmt.Printf("  Errors: %d\n", result.Errors)
	}
	fmt.Println(strings.Repeat("=", 50))

	if result.Errors == 0 {
		fmt.Println("\nAuthentication fix complete! You should now be able to log in.")
	}
}
