package main

import (
	"context"
	"errors"
	"log"
	"os"

	"inventory-api/internal/model"
	"inventory-api/internal/repository"
	"inventory-api/pkg/config"
	"inventory-api/pkg/database"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Username string `short:"u" long:"username" description:"account to reset" required:"true"`
	Password string `short:"p" long:"password" description:"new password" required:"true"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := resetPassword(context.Background(), repository.NewUserRepo(db), opts.Username, opts.Password); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✅ Password for %s has been reset", opts.Username)
}

func resetPassword(ctx context.Context, users repository.UserRepository, username, password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}

	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errors.New("user " + username + " not found")
		}
		return err
	}

	var hashed model.User
	if err := hashed.SetPassword(password); err != nil {
		return err
	}
	return users.UpdatePassword(ctx, user.ID, hashed.Password)
}
