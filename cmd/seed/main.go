// seed inserts a test user and a small product catalog into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/cfiestas6/go-rest-shop/internal/auth"
	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/infrastructure/mongodb"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password"
)

type productSpec struct {
	name  string
	price float64
}

var catalog = []productSpec{
	{"The Go Programming Language", 31.99},
	{"Mechanical Keyboard", 89.50},
	{"USB-C Hub", 24.00},
	{"Laptop Stand", 42.75},
	{"Noise Cancelling Headphones", 199.99},
	{"Webcam Cover 3-pack", 5.49},
	{"Desk Mat", 18.00},
	{"Monitor Light Bar", 54.90},
}

func main() {
	ctx := context.Background()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI is not set — run: direnv allow")
	}
	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "shop"
	}

	db, err := mongodb.Connect(ctx, uri, database)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close(ctx)

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("db indexes: %v", err)
	}

	// Seed user, skipped when it already exists (idempotent re-runs)
	users := mongodb.NewUserRepository(db)
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user, err := users.Create(ctx, &domain.User{Email: seedEmail, PasswordHash: hash})
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		user, err = users.FindByEmail(ctx, seedEmail)
		if err != nil {
			log.Fatalf("find seed user: %v", err)
		}
	case err != nil:
		log.Fatalf("create seed user: %v", err)
	}

	products := mongodb.NewProductRepository(db)
	var productIDs []string
	for _, spec := range catalog {
		p, err := products.Create(ctx, &domain.Product{Name: spec.name, Price: spec.price})
		if err != nil {
			log.Fatalf("insert product %q: %v", spec.name, err)
		}
		productIDs = append(productIDs, p.ID)
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:             %s / %s\n", seedEmail, seedPassword)
	fmt.Printf("  User ID:          %s\n", user.ID)
	fmt.Printf("  Products created: %d\n", len(productIDs))
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/user/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println("    # → {\"message\":\"Auth successfull!\",\"token\":\"eyJ...\"}")
	fmt.Println()
	fmt.Println("  Step 2 — place an order:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Printf("    curl -s -X POST http://localhost:8080/orders \\\n")
	fmt.Printf("      -H \"Authorization: Bearer $JWT\" -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"productId\":\"%s\",\"quantity\":2}'\n", productIDs[0])
	fmt.Println()
	fmt.Println("  Step 3 — list orders with the product populated:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/orders -H \"Authorization: Bearer $JWT\"")
}
