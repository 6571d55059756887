package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-commerce-api/config"
)

type methodSeed struct {
	name string
	cost float64
}

var shippingMethods = []methodSeed{
	{"Standard", 10.00},
	{"Express", 25.00},
	{"Overnight", 45.00},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, m := range shippingMethods {
		var id string
		err := db.QueryRow(`
			INSERT INTO shipping_methods (name, cost)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET cost = EXCLUDED.cost, updated_at = now()
			RETURNING id
		`, m.name, m.cost).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed shipping method %q: %v", m.name, err)
		}
		fmt.Printf("seeded shipping method: id=%s name=%s\n", id, m.name)
	}

	var categoryID string
	if err := db.QueryRow(`
		INSERT INTO categories (name, description)
		VALUES ('Electronics', 'Gadgets and devices')
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id
	`).Scan(&categoryID); err != nil {
		log.Fatalf("failed to seed category: %v", err)
	}
	fmt.Printf("seeded category: id=%s name=Electronics\n", categoryID)

	var productID string
	err = db.QueryRow(`SELECT id FROM products WHERE name = 'Demo Headphones'`).Scan(&productID)
	switch {
	case err == sql.ErrNoRows:
		if err := db.QueryRow(`
			INSERT INTO products (name, description, price)
			VALUES ('Demo Headphones', 'Wireless over-ear headphones', 79.99)
			RETURNING id
		`).Scan(&productID); err != nil {
			log.Fatalf("failed to seed product: %v", err)
		}
		fmt.Printf("seeded product: id=%s name=Demo Headphones\n", productID)
	case err != nil:
		log.Fatalf("failed to check demo product: %v", err)
	default:
		fmt.Printf("demo product already present: id=%s\n", productID)
	}
}
