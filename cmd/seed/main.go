// Command seed resets every persisted collection to the built-in defaults
// and clears the session slot. Useful for demos and for recovering from a
// snapshot that was corrupted by hand-editing.
package main

import (
	"encoding/json"
	"log"

	"smartshelfx/internal/store"
	"smartshelfx/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.Connect()
	defer db.Close()

	kv := store.NewKV(db)

	seed := map[string]any{
		store.KeyUsers:        store.DefaultUsers,
		store.KeyProducts:     store.DefaultProducts,
		store.KeyTransactions: store.DefaultTransactions,
		store.KeyOrders:       store.DefaultOrders,
	}

	for key, collection := range seed {
		raw, err := json.Marshal(collection)
		if err != nil {
			log.Fatalf("marshal %s: %v", key, err)
		}
		if err := kv.Put(key, raw); err != nil {
			log.Fatalf("write %s: %v", key, err)
		}
		log.Printf("seeded %s", key)
	}

	if err := kv.Delete(store.KeyCurrentUser); err != nil {
		log.Fatalf("clear %s: %v", store.KeyCurrentUser, err)
	}
	log.Println("cleared session slot")
}
