package content

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AboutCardRepository struct {
	DB *pgxpool.Pool
}

func NewAboutCardRepository(db *pgxpool.Pool) *AboutCardRepository {
	return &AboutCardRepository{DB: db}
}

const aboutCardColumns = `"id","title","description","icon","position"`

func (r *AboutCardRepository) List(ctx context.Context) ([]AboutCard, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT `+aboutCardColumns+`
		FROM "AboutCard"
		ORDER BY "position" ASC, "id" ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []AboutCard{}
	for rows.Next() {
		var c AboutCard
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Icon, &c.Position); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *AboutCardRepository) Create(ctx context.Context, title, description, icon string, position int) (*AboutCard, error) {
	row := r.DB.QueryRow(ctx, `
		INSERT INTO "AboutCard" ("title","description","icon","position")
		VALUES ($1,$2,$3,$4)
		RETURNING `+aboutCardColumns+`
	`, title, description, icon, position)
	return scanAboutCard(row)
}

func (r *AboutCardRepository) Update(ctx context.Context, id int64, title, description, icon string, position int) (*AboutCard, error) {
	row := r.DB.QueryRow(ctx, `
		UPDATE "AboutCard"
		SET "title"=$1, "description"=$2, "icon"=$3, "position"=$4
		WHERE "id"=$5
		RETURNING `+aboutCardColumns+`
	`, title, description, icon, position, id)

	card, err := scanAboutCard(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return card, err
}

func (r *AboutCardRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM "AboutCard" WHERE "id"=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanAboutCard(row pgx.Row) (*AboutCard, error) {
	var c AboutCard
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Icon, &c.Position); err != nil {
		return nil, err
	}
	return &c, nil
}
