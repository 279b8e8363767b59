package server

import (
	"context"
	"time"

	"podosite/internal/auth"
	"podosite/internal/content"
)

// Store interfaces are defined where they are consumed so handlers can be
// exercised against in-memory fakes; the pgx repositories satisfy them.

type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*auth.Admin, error)
	SaveVerificationCode(ctx context.Context, username, codeHash string, expires time.Time) error
	ClearVerificationCode(ctx context.Context, username string) error
	CompleteSetup(ctx context.Context, username, email, passwordHash string) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	SavePendingEmail(ctx context.Context, username, email, codeHash string, expires time.Time) error
	ConfirmPendingEmail(ctx context.Context, username string) error
}

type ServiceStore interface {
	List(ctx context.Context) ([]content.Service, error)
	Version(ctx context.Context) (string, error)
	Create(ctx context.Context, name, description string, price float64, category string) (*content.Service, error)
	Update(ctx context.Context, id int64, name, description string, price float64, category string) (*content.Service, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type SiteConfigStore interface {
	Get(ctx context.Context) (*content.SiteConfig, error)
	Upsert(ctx context.Context, cfg content.SiteConfig) (*content.SiteConfig, error)
}

type SuccessCaseStore interface {
	List(ctx context.Context) ([]content.SuccessCase, error)
	Create(ctx context.Context, title, description, imageBefore, imageAfter string) (*content.SuccessCase, error)
	Update(ctx context.Context, id int64, title, description, imageBefore, imageAfter string) (*content.SuccessCase, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AboutCardStore interface {
	List(ctx context.Context) ([]content.AboutCard, error)
	Create(ctx context.Context, title, description, icon string, position int) (*content.AboutCard, error)
	Update(ctx context.Context, id int64, title, description, icon string, position int) (*content.AboutCard, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ContactStore interface {
	Upsert(ctx context.Context, name string, email *string, phone string) error
}

type Mailer interface {
	Send(ctx context.Context, to []string, subject, text, html string) error
}
