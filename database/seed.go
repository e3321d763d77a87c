package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/job-tracker-backend/auth"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rs/zerolog/log"
)

var defaultUsers = []struct {
	username string
	password string
}{
	{"admin", "password123"},
	{"user", "userpass"},
}

// SeedDefaultUsers creates the demo accounts if they do not exist yet
func SeedDefaultUsers(ctx context.Context, users *UserRepo) error {
	for _, u := range defaultUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		stored, err := users.Ensure(ctx, &models.User{Username: u.username, Password: hash})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		log.Info().Str("username", stored.Username).Msg("Seeded user")
	}
	return nil
}
