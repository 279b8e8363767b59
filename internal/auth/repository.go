package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository persists operator accounts. Column names are quoted
// camelCase because the schema is shared with the Prisma-managed frontend
// tooling.
type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

const adminColumns = `"id","username","password","email","pendingEmail","isSetup","verificationCode","verificationCodeExpiresAt","createdAt","updatedAt"`

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT `+adminColumns+`
		FROM "Admin"
		WHERE "username"=$1
	`, username)

	admin, err := scanAdmin(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return admin, err
}

// SaveVerificationCode stores the hashed code and its expiry, overwriting any
// previous code so at most one is outstanding per account.
func (r *AdminRepository) SaveVerificationCode(ctx context.Context, username, codeHash string, expires time.Time) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "Admin"
		SET "verificationCode"=$1, "verificationCodeExpiresAt"=$2, "updatedAt"=NOW()
		WHERE "username"=$3
	`, codeHash, expires, username)
	return err
}

func (r *AdminRepository) ClearVerificationCode(ctx context.Context, username string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "Admin"
		SET "verificationCode"=NULL, "verificationCodeExpiresAt"=NULL, "updatedAt"=NOW()
		WHERE "username"=$1
	`, username)
	return err
}

// CompleteSetup binds the confirmed contact email, replaces the default
// password, marks the account as set up and clears the verification state.
func (r *AdminRepository) CompleteSetup(ctx context.Context, username, email, passwordHash string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "Admin"
		SET "email"=$1,
		    "password"=$2,
		    "isSetup"=TRUE,
		    "verificationCode"=NULL,
		    "verificationCodeExpiresAt"=NULL,
		    "updatedAt"=NOW()
		WHERE "username"=$3
	`, email, passwordHash, username)
	return err
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "Admin"
		SET "password"=$1, "updatedAt"=NOW()
		WHERE "username"=$2
	`, passwordHash, username)
	return err
}

// SavePendingEmail records a requested-but-unconfirmed contact email together
// with a fresh verification code.
func (r *AdminRepository) SavePendingEmail(ctx context.Context, username, email, codeHash string, expires time.Time) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "Admin"
		SET "pendingEmail"=$1,
		    "verificationCode"=$2,
		    "verificationCodeExpiresAt"=$3,
		    "updatedAt"=NOW()
		WHERE "username"=$4
	`, email, codeHash, expires, username)
	return err
}

// ConfirmPendingEmail promotes pendingEmail to the contact email and clears
// the pending state and verification code.
func (r *AdminRepository) ConfirmPendingEmail(ctx context.Context, username string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE "Admin"
		SET "email"="pendingEmail",
		    "pendingEmail"=NULL,
		    "verificationCode"=NULL,
		    "verificationCodeExpiresAt"=NULL,
		    "updatedAt"=NOW()
		WHERE "username"=$1
	`, username)
	return err
}

// Upsert creates the account or resets its password, used by the seeder.
func (r *AdminRepository) Upsert(ctx context.Context, username, passwordHash string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO "Admin" ("username","password","isSetup")
		VALUES ($1,$2,FALSE)
		ON CONFLICT ("username")
		DO UPDATE SET "password"=EXCLUDED."password", "updatedAt"=NOW()
	`, username, passwordHash)
	return err
}

// Reset returns an existing account to the pre-setup state: default password,
// no contact email, no outstanding code. The operator must run setup again.
func (r *AdminRepository) Reset(ctx context.Context, username, passwordHash string) (bool, error) {
	tag, err := r.DB.Exec(ctx, `
		UPDATE "Admin"
		SET "password"=$1,
		    "isSetup"=FALSE,
		    "email"=NULL,
		    "pendingEmail"=NULL,
		    "verificationCode"=NULL,
		    "verificationCodeExpiresAt"=NULL,
		    "updatedAt"=NOW()
		WHERE "username"=$2
	`, passwordHash, username)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanAdmin(row pgx.Row) (*Admin, error) {
	var a Admin
	if err := row.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.Email,
		&a.PendingEmail,
		&a.IsSetup,
		&a.VerificationCode,
		&a.VerificationCodeExpiresAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
