package main

import (
	"flag"
	"log"

	"github.com/JagtapGaurav/Matrimonial/internal/config"
	"github.com/JagtapGaurav/Matrimonial/internal/db"
)

func main() {
	reset := flag.Bool("reset", false, "wipe all tables before seeding")
	flag.Parse()

	// Load configuration
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if *reset {
		err = db.ResetAndSeed(database)
	} else {
		err = db.SeedDemoData(database)
	}
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
