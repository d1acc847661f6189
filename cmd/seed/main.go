package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	defaultDSN := os.Getenv("DATABASE_URL")
	dsn := flag.String("dsn", defaultDSN, "database url")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("DSN required via flag -dsn or DATABASE_URL env")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot ping DB:", err)
	}

	seedDemoUser(db)
}

func seedDemoUser(db *sql.DB) {
	username := "demo"
	email := "demo@brainsimp.local"
	password := "password123"

	if envUser := os.Getenv("SEED_USERNAME"); envUser != "" {
		username = envUser
	}
	if envEmail := os.Getenv("SEED_EMAIL"); envEmail != "" {
		email = envEmail
	}
	if envPass := os.Getenv("SEED_PASSWORD"); envPass != "" {
		password = envPass
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	query := `
		INSERT INTO users (username, email, password_hash, level)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (email) DO UPDATE SET password_hash = excluded.password_hash;
	`

	if _, err := db.Exec(query, username, email, string(hashed)); err != nil {
		log.Fatal("Seed failed:", err)
	}

	fmt.Printf("Seeded user %s <%s>\n", username, email)
}
