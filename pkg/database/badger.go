package database

import (
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// Connect opens the on-disk key/value store used for persisted snapshots.
// The path comes from BADGER_PATH, defaulting to ./data.
func Connect() *badger.DB {
	path := os.Getenv("BADGER_PATH")
	if path == "" {
		path = "data"
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logger is noisy at INFO

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Failed to open badger store. \n", err)
	}

	log.Println("Persistent store opened at", path)
	return db
}

// ConnectInMemory opens a throwaway in-memory store, used by tests.
func ConnectInMemory() *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Failed to open in-memory badger store. \n", err)
	}
	return db
}
