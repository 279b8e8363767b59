package content

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SiteConfigRepository struct {
	DB *pgxpool.Pool
}

func NewSiteConfigRepository(db *pgxpool.Pool) *SiteConfigRepository {
	return &SiteConfigRepository{DB: db}
}

const siteConfigColumns = `"id","email","phone","address","instagram","heroTitle","heroSubtitle","aboutTitle","aboutText","updatedAt"`

func (r *SiteConfigRepository) Get(ctx context.Context) (*SiteConfig, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT `+siteConfigColumns+`
		FROM "SiteConfig"
		WHERE "id"=1
	`)

	cfg, err := scanSiteConfig(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return cfg, err
}

// Upsert writes the singleton row, creating it on first save.
func (r *SiteConfigRepository) Upsert(ctx context.Context, cfg SiteConfig) (*SiteConfig, error) {
	row := r.DB.QueryRow(ctx, `
		INSERT INTO "SiteConfig"
		("id","email","phone","address","instagram","heroTitle","heroSubtitle","aboutTitle","aboutText")
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT ("id") DO UPDATE SET
			"email"=EXCLUDED."email",
			"phone"=EXCLUDED."phone",
			"address"=EXCLUDED."address",
			"instagram"=EXCLUDED."instagram",
			"heroTitle"=EXCLUDED."heroTitle",
			"heroSubtitle"=EXCLUDED."heroSubtitle",
			"aboutTitle"=EXCLUDED."aboutTitle",
			"aboutText"=EXCLUDED."aboutText",
			"updatedAt"=NOW()
		RETURNING `+siteConfigColumns+`
	`, cfg.Email, cfg.Phone, cfg.Address, cfg.Instagram, cfg.HeroTitle, cfg.HeroSubtitle, cfg.AboutTitle, cfg.AboutText)

	return scanSiteConfig(row)
}

// EnsureDefault inserts the singleton row when absent, leaving an existing
// row untouched.
func (r *SiteConfigRepository) EnsureDefault(ctx context.Context, cfg SiteConfig) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO "SiteConfig"
		("id","email","phone","address","instagram","heroTitle","heroSubtitle","aboutTitle","aboutText")
		VALUES (1,$1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT ("id") DO NOTHING
	`, cfg.Email, cfg.Phone, cfg.Address, cfg.Instagram, cfg.HeroTitle, cfg.HeroSubtitle, cfg.AboutTitle, cfg.AboutText)
	return err
}

func scanSiteConfig(row pgx.Row) (*SiteConfig, error) {
	var c SiteConfig
	if err := row.Scan(&c.ID, &c.Email, &c.Phone, &c.Address, &c.Instagram, &c.HeroTitle, &c.HeroSubtitle, &c.AboutTitle, &c.AboutText, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
