package content

import "time"

type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SiteConfig is a singleton row (id=1) holding the editable site content.
type SiteConfig struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Instagram    string    `json:"instagram"`
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	AboutTitle   string    `json:"aboutTitle"`
	AboutText    string    `json:"aboutText"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SuccessCase struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageBefore string    `json:"imageBefore"`
	ImageAfter  string    `json:"imageAfter"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AboutCard struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Position    int    `json:"position"`
}

// Contact is a quote requester, upserted by phone so repeat requests update
// the stored name/email instead of duplicating rows.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
