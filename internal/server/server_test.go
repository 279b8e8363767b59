package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"podosite/internal/auth"
	"podosite/internal/config"
	"podosite/internal/content"
)

type fakeAdminStore struct {
	admins map[string]*auth.Admin
	err    error
}

func newFakeAdminStore(admins ...*auth.Admin) *fakeAdminStore {
	store := &fakeAdminStore{admins: map[string]*auth.Admin{}}
	for _, a := range admins {
		store.admins[a.Username] = a
	}
	return store
}

func (s *fakeAdminStore) FindByUsername(ctx context.Context, username string) (*auth.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	admin, ok := s.admins[username]
	if !ok {
		return nil, nil
	}
	clone := *admin
	return &clone, nil
}

func (s *fakeAdminStore) SaveVerificationCode(ctx context.Context, username, codeHash string, expires time.Time) error {
	if s.err != nil {
		return s.err
	}
	a := s.admins[username]
	a.VerificationCode = &codeHash
	a.VerificationCodeExpiresAt = &expires
	return nil
}

func (s *fakeAdminStore) ClearVerificationCode(ctx context.Context, username string) error {
	a := s.admins[username]
	a.VerificationCode = nil
	a.VerificationCodeExpiresAt = nil
	return nil
}

func (s *fakeAdminStore) CompleteSetup(ctx context.Context, username, email, passwordHash string) error {
	a := s.admins[username]
	a.Email = &email
	a.PasswordHash = passwordHash
	a.IsSetup = true
	a.VerificationCode = nil
	a.VerificationCodeExpiresAt = nil
	return nil
}

func (s *fakeAdminStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	s.admins[username].PasswordHash = passwordHash
	return nil
}

func (s *fakeAdminStore) SavePendingEmail(ctx context.Context, username, email, codeHash string, expires time.Time) error {
	a := s.admins[username]
	a.PendingEmail = &email
	a.VerificationCode = &codeHash
	a.VerificationCodeExpiresAt = &expires
	return nil
}

func (s *fakeAdminStore) ConfirmPendingEmail(ctx context.Context, username string) error {
	a := s.admins[username]
	a.Email = a.PendingEmail
	a.PendingEmail = nil
	a.VerificationCode = nil
	a.VerificationCodeExpiresAt = nil
	return nil
}

type fakeServiceStore struct {
	services []content.Service
	version  string
	nextID   int64
	err      error
}

func (s *fakeServiceStore) List(ctx context.Context) ([]content.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]content.Service{}, s.services...), nil
}

func (s *fakeServiceStore) Version(ctx context.Context) (string, error) {
	return s.version, s.err
}

func (s *fakeServiceStore) Create(ctx context.Context, name, description string, price float64, category string) (*content.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	svc := content.Service{ID: s.nextID, Name: name, Description: description, Price: price, Category: category}
	s.services = append(s.services, svc)
	return &svc, nil
}

func (s *fakeServiceStore) Update(ctx context.Context, id int64, name, description string, price float64, category string) (*content.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.services {
		if s.services[i].ID == id {
			s.services[i].Name = name
			s.services[i].Description = description
			s.services[i].Price = price
			s.services[i].Category = category
			svc := s.services[i]
			return &svc, nil
		}
	}
	return nil, nil
}

func (s *fakeServiceStore) Delete(ctx context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeSiteConfigStore struct {
	cfg *content.SiteConfig
	err error
}

func (s *fakeSiteConfigStore) Get(ctx context.Context) (*content.SiteConfig, error) {
	return s.cfg, s.err
}

func (s *fakeSiteConfigStore) Upsert(ctx context.Context, cfg content.SiteConfig) (*content.SiteConfig, error) {
	if s.err != nil {
		return nil, s.err
	}
	cfg.ID = 1
	cfg.UpdatedAt = time.Now()
	s.cfg = &cfg
	return s.cfg, nil
}

type fakeSuccessCaseStore struct {
	cases  []content.SuccessCase
	nextID int64
	err    error
}

func (s *fakeSuccessCaseStore) List(ctx context.Context) ([]content.SuccessCase, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]content.SuccessCase{}, s.cases...), nil
}

func (s *fakeSuccessCaseStore) Create(ctx context.Context, title, description, imageBefore, imageAfter string) (*content.SuccessCase, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	sc := content.SuccessCase{ID: s.nextID, Title: title, Description: description, ImageBefore: imageBefore, ImageAfter: imageAfter}
	s.cases = append(s.cases, sc)
	return &sc, nil
}

func (s *fakeSuccessCaseStore) Update(ctx context.Context, id int64, title, description, imageBefore, imageAfter string) (*content.SuccessCase, error) {
	for i := range s.cases {
		if s.cases[i].ID == id {
			s.cases[i].Title = title
			s.cases[i].Description = description
			s.cases[i].ImageBefore = imageBefore
			s.cases[i].ImageAfter = imageAfter
			sc := s.cases[i]
			return &sc, nil
		}
	}
	return nil, nil
}

func (s *fakeSuccessCaseStore) Delete(ctx context.Context, id int64) (bool, error) {
	for i := range s.cases {
		if s.cases[i].ID == id {
			s.cases = append(s.cases[:i], s.cases[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeAboutCardStore struct {
	cards  []content.AboutCard
	nextID int64
	err    error
}

func (s *fakeAboutCardStore) List(ctx context.Context) ([]content.AboutCard, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]content.AboutCard{}, s.cards...), nil
}

func (s *fakeAboutCardStore) Create(ctx context.Context, title, description, icon string, position int) (*content.AboutCard, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	card := content.AboutCard{ID: s.nextID, Title: title, Description: description, Icon: icon, Position: position}
	s.cards = append(s.cards, card)
	return &card, nil
}

func (s *fakeAboutCardStore) Update(ctx context.Context, id int64, title, description, icon string, position int) (*content.AboutCard, error) {
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].Title = title
			s.cards[i].Description = description
			s.cards[i].Icon = icon
			s.cards[i].Position = position
			card := s.cards[i]
			return &card, nil
		}
	}
	return nil, nil
}

func (s *fakeAboutCardStore) Delete(ctx context.Context, id int64) (bool, error) {
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type upsertedContact struct {
	name  string
	email *string
	phone string
}

type fakeContactStore struct {
	contacts []upsertedContact
	err      error
}

func (s *fakeContactStore) Upsert(ctx context.Context, name string, email *string, phone string) error {
	if s.err != nil {
		return s.err
	}
	s.contacts = append(s.contacts, upsertedContact{name: name, email: email, phone: phone})
	return nil
}

type sentEmail struct {
	to      []string
	subject string
	text    string
	html    string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, to []string, subject, text, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, text: text, html: html})
	return nil
}

// hashPassword uses the minimum bcrypt cost to keep tests fast.
func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hash)
}

type testEnv struct {
	server   *Server
	handler  http.Handler
	admins   *fakeAdminStore
	services *fakeServiceStore
	site     *fakeSiteConfigStore
	cases    *fakeSuccessCaseStore
	cards    *fakeAboutCardStore
	contacts *fakeContactStore
	mailer   *fakeMailer
}

func newTestEnv(t *testing.T, admins ...*auth.Admin) *testEnv {
	t.Helper()
	env := &testEnv{
		admins:   newFakeAdminStore(admins...),
		services: &fakeServiceStore{},
		site:     &fakeSiteConfigStore{},
		cases:    &fakeSuccessCaseStore{},
		cards:    &fakeAboutCardStore{},
		contacts: &fakeContactStore{},
		mailer:   &fakeMailer{},
	}
	env.server = &Server{
		Admins:   env.admins,
		Services: env.services,
		Site:     env.site,
		Cases:    env.cases,
		Cards:    env.cards,
		Contacts: env.contacts,
		Mailer:   env.mailer,
		Tokens:   auth.NewTokenService("test-secret"),
		Hasher:   auth.NewBcryptHasher(),
		Config: config.Config{
			QuoteRecipients: []string{"coni@example.com"},
		},
	}
	env.handler = env.server.Router()
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) token(t *testing.T, username, scope string) string {
	t.Helper()
	token, err := e.server.Tokens.Issue(username, scope, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return body
}

// setupAdmin is a pre-setup operator still on the default password.
func setupAdmin(t *testing.T, password string) *auth.Admin {
	return &auth.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashPassword(t, password),
		IsSetup:      false,
	}
}

// fullAdmin is an operator that completed setup and has a contact email.
func fullAdmin(t *testing.T, password string) *auth.Admin {
	email := "coni@example.com"
	return &auth.Admin{
		ID:           1,
		Username:     "admin",
		PasswordHash: hashPassword(t, password),
		Email:        &email,
		IsSetup:      true,
	}
}
