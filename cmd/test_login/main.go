package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"supafix/internal/authfix"
	"supafix/internal/config"
	"supafix/internal/supabase"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "email to log in with")
	password := flag.String("password", "", "password to log in with")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: test_login -email <email> -password <password>")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()
	if err := cfg.ValidateAnon(); err != nil {
		log.Fatal(err)
	}

	client := supabase.NewClient(cfg)

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Testing Supabase Auth Login")
	fmt.Println(strings.Repeat("=", 50))

	authfix.CheckLogin(client, *email, *password)
}
