package content

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SuccessCaseRepository struct {
	DB *pgxpool.Pool
}

func NewSuccessCaseRepository(db *pgxpool.Pool) *SuccessCaseRepository {
	return &SuccessCaseRepository{DB: db}
}

const successCaseColumns = `"id","title","description","imageBefore","imageAfter","createdAt"`

func (r *SuccessCaseRepository) List(ctx context.Context) ([]SuccessCase, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT `+successCaseColumns+`
		FROM "SuccessCase"
		ORDER BY "id" ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := []SuccessCase{}
	for rows.Next() {
		var c SuccessCase
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageBefore, &c.ImageAfter, &c.CreatedAt); err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}

func (r *SuccessCaseRepository) Create(ctx context.Context, title, description, imageBefore, imageAfter string) (*SuccessCase, error) {
	row := r.DB.QueryRow(ctx, `
		INSERT INTO "SuccessCase" ("title","description","imageBefore","imageAfter")
		VALUES ($1,$2,$3,$4)
		RETURNING `+successCaseColumns+`
	`, title, description, imageBefore, imageAfter)
	return scanSuccessCase(row)
}

func (r *SuccessCaseRepository) Update(ctx context.Context, id int64, title, description, imageBefore, imageAfter string) (*SuccessCase, error) {
	row := r.DB.QueryRow(ctx, `
		UPDATE "SuccessCase"
		SET "title"=$1, "description"=$2, "imageBefore"=$3, "imageAfter"=$4
		WHERE "id"=$5
		RETURNING `+successCaseColumns+`
	`, title, description, imageBefore, imageAfter, id)

	sc, err := scanSuccessCase(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return sc, err
}

// Count reports the number of stored cases, used by the seeder to avoid
// reinserting placeholders.
func (r *SuccessCaseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM "SuccessCase"`).Scan(&n)
	return n, err
}

func (r *SuccessCaseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM "SuccessCase" WHERE "id"=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanSuccessCase(row pgx.Row) (*SuccessCase, error) {
	var c SuccessCase
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ImageBefore, &c.ImageAfter, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
