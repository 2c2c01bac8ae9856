// Command token is operator tooling for the team service: it signs a bearer
// token for a subject, or hashes a client secret for AUTH_CLIENT_SECRET_HASH.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/spec-kit/team-service/internal/auth"
	"github.com/spec-kit/team-service/internal/config"
)

func main() {
	subject := flag.String("subject", "operator", "token subject")
	hashSecret := flag.String("hash", "", "print a bcrypt hash of this client secret instead of a token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if *hashSecret != "" {
		hash, err := auth.HashSecret(*hashSecret, cfg.Auth.BcryptCost)
		if err != nil {
			log.Fatalf("hash secret: %v", err)
		}
		fmt.Println(hash)
		return
	}

	tm := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	token, expiresAt, err := tm.GenerateToken(*subject)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Printf("%s\n# expires %s\n", token, expiresAt.Format("2006-01-02T15:04:05Z07:00"))
}
