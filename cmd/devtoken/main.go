// Command devtoken signs a bearer token with JWT_SECRET for local testing.
// Production tokens come from the identity provider.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

func main() {
	role := flag.String("role", "member", "member or staff")
	userID := flag.String("user", "", "user id (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	r, err := user.NewRole(*role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	id := uuid.New()
	if *userID != "" {
		if id, err = uuid.Parse(*userID); err != nil {
			fmt.Fprintln(os.Stderr, "invalid user id:", err)
			os.Exit(1)
		}
	}

	token, err := jwt.NewService(secret, *ttl, jwt.WithIssuer(os.Getenv("JWT_ISSUER"))).GenerateToken(id, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
