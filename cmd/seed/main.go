package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"taskboard/config"
	"taskboard/pkg/helpers"
)

// Seeds the baseline workflow: an admin account, the five statuses of the
// editorial pipeline, and the two starter labels.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@taskboard.local"
	password := "admin123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash, "Admin", "Admin").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)

	statuses := []struct{ name, slug string }{
		{"Draft", "draft"},
		{"To Review", "to_review"},
		{"To Be Fixed", "to_be_fixed"},
		{"To Publish", "to_publish"},
		{"Published", "published"},
	}
	for _, s := range statuses {
		var sid int64
		if err := db.QueryRow(`
			INSERT INTO task_statuses (name, slug)
			VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, s.name, s.slug).Scan(&sid); err != nil {
			log.Fatalf("failed to upsert status %s: %v", s.slug, err)
		}
		fmt.Printf("status ensured: id=%d slug=%s\n", sid, s.slug)
	}

	for _, name := range []string{"feature", "bug"} {
		var lid int64
		if err := db.QueryRow(`
			INSERT INTO labels (name)
			VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, name).Scan(&lid); err != nil {
			log.Fatalf("failed to upsert label %s: %v", name, err)
		}
		fmt.Printf("label ensured: id=%d name=%s\n", lid, name)
	}
}
