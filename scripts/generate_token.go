package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/security"
)

// Prints a bearer token for an existing account, for poking at the API by hand.
// The user must exist; the pipeline resolves the subject on every request.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	email := flag.String("email", "", "Email of the user the token is issued to")
	role := flag.String("role", string(domain.RoleDefault), "Role claim (SUPER_ADMIN, ADMIN, DEFAULT, PENDING)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *email == "" {
		log.Fatal("Email is required")
	}
	parsedRole, ok := domain.ParseRole(*role)
	if !ok {
		log.Fatalf("Unknown role %q", *role)
	}

	tokens, err := security.NewTokenService(os.Getenv("JWT_SECRET"), time.Duration(*expirationHours)*time.Hour)
	if err != nil {
		log.Fatalf("Invalid JWT_SECRET: %v", err)
	}

	token, err := tokens.Issue(&domain.User{Email: domain.CanonicalEmail(*email), Role: parsedRole})
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", token)
}
