package content

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	DB *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{DB: db}
}

// Upsert records a quote requester keyed by phone number.
func (r *ContactRepository) Upsert(ctx context.Context, name string, email *string, phone string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO "Contact" ("name","email","phone")
		VALUES ($1,$2,$3)
		ON CONFLICT ("phone")
		DO UPDATE SET "name"=EXCLUDED."name", "email"=EXCLUDED."email", "updatedAt"=NOW()
	`, name, email, phone)
	return err
}
