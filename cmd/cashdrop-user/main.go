// Command cashdrop-user creates a user and prints a bearer token for it.
//
//	cashdrop-user -email clerk@example.com -name "Casey Clerk" -password secret [-admin]
//
// An existing user with the same email is reused, so the command can be run
// again to mint a fresh token.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vbonduro/cashdrop/internal/config"
	"github.com/vbonduro/cashdrop/internal/db"
	"github.com/vbonduro/cashdrop/internal/domain"
	"github.com/vbonduro/cashdrop/internal/store"
	"github.com/vbonduro/cashdrop/internal/web"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	email := flag.String("email", "", "user email (required)")
	name := flag.String("name", "", "display name (defaults to the email)")
	password := flag.String("password", "", "password (required for new users)")
	admin := flag.Bool("admin", false, "grant admin rights")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		log.Fatal("-email is required")
	}
	if *name == "" {
		*name = *email
	}

	database, err := db.Open(cfg.DBDriver, cfg.DataSource())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = database.Close() }()

	ctx := context.Background()
	users := store.NewUserStore(database)

	user, err := users.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("failed to look up user: %v", err)
	}
	if user == nil {
		if *password == "" {
			log.Fatal("-password is required when creating a user")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		user, err = users.Create(ctx, &domain.User{
			Email:        *email,
			Name:         *name,
			PasswordHash: string(hash),
			IsAdmin:      *admin,
		})
		if err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		log.Printf("created user %d (%s, admin=%t)", user.ID, user.Email, user.IsAdmin)
	}

	token, err := web.IssueToken(cfg.AuthSecret, user, *ttl)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	fmt.Println(token)
}
