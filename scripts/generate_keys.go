//go:build ignore

// Generates a JWT secret, an API key with its bcrypt hash, and a sample
// bearer token signed with the new secret.
//
//	go run scripts/generate_keys.go -subject ci-pipeline -ttl 24h
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/boltjoint-service/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

func randomKey(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	subject := flag.String("subject", "local-dev", "subject of the sample token")
	issuer := flag.String("issuer", "boltjoint-service", "issuer, must match JWT_ISSUER")
	ttl := flag.Duration("ttl", time.Hour, "lifetime of the sample token")
	flag.Parse()

	secret, err := randomKey(32)
	if err != nil {
		fail("generate JWT secret", err)
	}
	apiKey, err := randomKey(24)
	if err != nil {
		fail("generate API key", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		fail("hash API key", err)
	}
	token, err := middleware.NewJWTVerifier(secret, *issuer).Issue(*subject, *ttl)
	if err != nil {
		fail("sign sample token", err)
	}

	fmt.Println("# server environment")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", secret)
	fmt.Printf("JWT_ISSUER=%s\n", *issuer)
	fmt.Printf("API_KEYS=%s\n", hash)
	fmt.Println()
	fmt.Println("# client credentials")
	fmt.Printf("X-API-Key: %s\n", apiKey)
	fmt.Printf("Authorization: Bearer %s\n", token)
	fmt.Printf("# token subject %q expires in %s\n", *subject, *ttl)
}
