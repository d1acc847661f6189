package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"

	"brainsimp-server/internal/storage/postgres/migrations"
)

func main() {
	_ = godotenv.Load()

	cmd := flag.String("op", "", "operation: up, down, version, force")
	steps := flag.Int("steps", 0, "number of steps for up/down (0 = all)")
	databaseURL := flag.String("db", os.Getenv("DATABASE_URL"), "database url")
	forceVersion := flag.Int("version", 0, "target version for force")
	flag.Parse()

	if *cmd == "" {
		fmt.Println("Usage: go run cmd/migrate/main.go -op=[up|down|version|force] -steps=[n] -db=[url]")
		os.Exit(1)
	}

	if *databaseURL == "" {
		log.Fatal("database url required via flag -db or DATABASE_URL env")
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatalf("failed to load migrations: %v", err)
	}

	// golang-migrate selects its driver by URL scheme.
	url := strings.Replace(*databaseURL, "postgres://", "pgx5://", 1)

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		log.Fatalf("failed to init migrate: %v", err)
	}
	defer m.Close()

	switch *cmd {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, vErr := m.Version()
		if vErr != nil && !errors.Is(vErr, migrate.ErrNilVersion) {
			log.Fatalf("failed to read version: %v", vErr)
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)
		return
	case "force":
		err = m.Force(*forceVersion)
	default:
		log.Fatalf("unknown operation: %s", *cmd)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migration failed: %v", err)
	}

	fmt.Println("done")
}
