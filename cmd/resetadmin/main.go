package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"podosite/internal/auth"
	"podosite/internal/config"
	"podosite/internal/database"
)

// Default passwords restored by a reset. Only the seeded accounts can be
// reset from here.
var defaultPasswords = map[string]string{
	"admin": "4dm1n1str4d0r",
	"dev":   "d3v3l0p3r",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: resetadmin <username>")
		fmt.Fprintln(os.Stderr, "Resets a seeded account (admin or dev) to its default password and pre-setup state.")
		os.Exit(1)
	}
	username := os.Args[1]

	password, ok := defaultPasswords[username]
	if !ok {
		log.Fatalf("unknown account %q: must be admin or dev", username)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	hash, err := auth.NewBcryptHasher().Hash(password)
	if err != nil {
		log.Fatalf("hashing password: %v", err)
	}

	found, err := auth.NewAdminRepository(db).Reset(context.Background(), username, hash)
	if err != nil {
		log.Fatalf("resetting %q: %v", username, err)
	}
	if !found {
		log.Fatalf("account %q does not exist, run the seeder first", username)
	}

	log.Printf("account %q reset, temporary password: %s", username, password)
	log.Printf("the operator must repeat initial setup on next login")
}
