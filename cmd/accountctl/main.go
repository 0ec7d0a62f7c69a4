// Command accountctl performs the administrative account steps the web pages
// never do: creating users and their profiles, toggling and resetting them.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/bookmarks/account/internal/core/service"
	mongodb "github.com/bookmarks/account/internal/infrastructure/db/mongo"
	"github.com/bookmarks/account/internal/pkg/config"
	"github.com/bookmarks/account/pkg/logger"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log := logger.Init(logger.Options{Level: "warn", Pretty: true, Output: os.Stderr, Service: "accountctl"})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create mongodb indexes")
	}

	admin := service.NewAdminService(mongodb.NewUserRepository(db), mongodb.NewProfileRepository(db))
	app := &app{
		admin:  admin,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "accountctl:", err)
		os.Exit(1)
	}
}
