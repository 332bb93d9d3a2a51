// Command token issues an access token for an existing user. It is used to
// call the API from scripts and during local development.
//
// Usage:
//
//	token --user=<uuid>
//
// Reads the same configuration as the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/fairplay-backend/internal/auth"
	"github.com/heartmarshall/fairplay-backend/internal/config"
)

func main() {
	rawID := flag.String("user", "", "id of the user to issue a token for")
	flag.Parse()

	userID, err := uuid.Parse(*rawID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := userrepo.New(pool).GetByID(ctx, userID)
	if err != nil {
		log.Fatalf("find user %s: %v", userID, err)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwt.GenerateAccessToken(user.ID)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
}
