package content

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

const serviceColumns = `"id","name","description","price","category","createdAt","updatedAt"`

func (r *ServiceRepository) List(ctx context.Context) ([]Service, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM "Service"
		ORDER BY "id" ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []Service{}
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// Version returns the most recent updatedAt across all services, used by the
// client to cheaply detect catalog changes. Empty string when no rows exist.
func (r *ServiceRepository) Version(ctx context.Context) (string, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT to_char("updatedAt" AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS.MS"Z"')
		FROM "Service"
		ORDER BY "updatedAt" DESC
		LIMIT 1
	`)
	var version string
	if err := row.Scan(&version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return version, nil
}

func (r *ServiceRepository) Create(ctx context.Context, name, description string, price float64, category string) (*Service, error) {
	row := r.DB.QueryRow(ctx, `
		INSERT INTO "Service" ("name","description","price","category")
		VALUES ($1,$2,$3,$4)
		RETURNING `+serviceColumns+`
	`, name, description, price, category)
	return scanService(row)
}

func (r *ServiceRepository) Update(ctx context.Context, id int64, name, description string, price float64, category string) (*Service, error) {
	row := r.DB.QueryRow(ctx, `
		UPDATE "Service"
		SET "name"=$1, "description"=$2, "price"=$3, "category"=$4, "updatedAt"=NOW()
		WHERE "id"=$5
		RETURNING `+serviceColumns+`
	`, name, description, price, category, id)

	svc, err := scanService(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return svc, err
}

// CreateIfMissing inserts a service unless one with the same name already
// exists, keeping the seeder idempotent.
func (r *ServiceRepository) CreateIfMissing(ctx context.Context, name, description string, price float64, category string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO "Service" ("name","description","price","category")
		SELECT $1,$2,$3,$4
		WHERE NOT EXISTS (SELECT 1 FROM "Service" WHERE "name"=$1)
	`, name, description, price, category)
	return err
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM "Service" WHERE "id"=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanService(row pgx.Row) (*Service, error) {
	var s Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
