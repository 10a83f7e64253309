// Command jwtgen issues an access token for manual API testing.
package main

import (
	"flag"
	"fmt"
	"os"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain/auth"
)

func main() {
	var (
		email   = flag.String("email", "dev@local", "token email")
		role    = flag.String("rol", "ADMINISTRADOR", "token role")
		project = flag.String("proyecto", "", "project code for registrars")
		userID  = flag.String("user-id", "", "user id (random when empty)")
	)
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Println("JWT_SECRET not set")
		os.Exit(1)
	}

	uid := id.New()
	if *userID != "" {
		parsed, err := id.Parse(*userID)
		if err != nil {
			fmt.Printf("invalid -user-id: %v\n", err)
			os.Exit(1)
		}
		uid = parsed
	}

	user := &auth.User{Email: *email, Role: *role}
	user.ID = uid
	if *project != "" {
		user.ProjectCode = project
	}

	svc := auth.NewJWTService(auth.DefaultJWTConfig(secret))
	token, expiresAt, err := svc.GenerateAccessToken(user)
	if err != nil {
		fmt.Printf("generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
}
