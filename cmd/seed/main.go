package main

import (
	"context"
	"log"

	"podosite/internal/auth"
	"podosite/internal/config"
	"podosite/internal/content"
	"podosite/internal/database"
)

type seedService struct {
	name        string
	description string
	price       float64
	category    string
}

var seedServices = []seedService{
	{
		name:        "Podología Clínica Integral",
		description: "Evaluación, corte de uñas, limpieza de surcos, retiro de durezas y humectación.",
		price:       25000,
		category:    "Clínico",
	},
	{
		name:        "Tratamiento Onicocriptosis (Uña Encarnada)",
		description: "Procedimiento para retirar la espícula de la uña que causa dolor e infección.",
		price:       35000,
		category:    "Clínico",
	},
	{
		name:        "Reconstrucción Ungueal",
		description: "Reconstrucción estética de la uña con resina acrílica medicada.",
		price:       15000,
		category:    "Estético",
	},
	{
		name:        "Esmaltado Permanente",
		description: "Esmaltado de larga duración posterior a la atención podológica.",
		price:       12000,
		category:    "Estético",
	},
	{
		name:        "Ortosis de Silicona",
		description: "Dispositivo a medida para corregir o proteger zonas de presión en los dedos.",
		price:       18000,
		category:    "Ortopedia",
	},
	{
		name:        "Masaje Podal Relajante",
		description: "Masaje de 20 minutos enfocado en aliviar la tensión y mejorar la circulación.",
		price:       15000,
		category:    "Bienestar",
	},
}

// Default passwords for freshly-seeded operator accounts. Both accounts start
// with isSetup=false so the first login forces the setup flow.
var seedAdmins = map[string]string{
	"admin": "4dm1n1str4d0r",
	"dev":   "d3v3l0p3r",
}

var defaultSiteConfig = content.SiteConfig{
	Email:        "contacto@podologiaconi.cl",
	Phone:        "+56 9 1234 5678",
	Address:      "Av. Providencia 1234, Of. 505",
	Instagram:    "https://instagram.com/podologiaconi",
	HeroTitle:    "Podología Clínica Integral",
	HeroSubtitle: "Recupera la salud y belleza de tus pies con atención profesional personalizada.",
	AboutTitle:   "Hola, soy Constanza Cortés",
	AboutText:    "Podóloga clínica certificada con experiencia en el tratamiento de diversas patologías del pie. Mi compromiso es brindar una atención de calidad, segura y empática.",
}

type seedCase struct {
	title       string
	description string
	imageBefore string
	imageAfter  string
}

var seedCases = []seedCase{
	{
		title:       "Onicocriptosis Severa",
		description: "Paciente con uña encarnada de 3 semanas de evolución. Se realiza espiculectomía y curación avanzada. Recuperación total en 2 semanas.",
		imageBefore: "https://images.unsplash.com/photo-1628965942468-b7c4d51624c8?q=80&w=600&auto=format&fit=crop",
		imageAfter:  "https://images.unsplash.com/photo-1519415387722-a1c3bbef716c?q=80&w=600&auto=format&fit=crop",
	},
	{
		title:       "Reconstrucción Ungueal",
		description: "Reconstrucción estética de lámina ungueal traumatizada mediante resina acrílica con antimicótico.",
		imageBefore: "https://images.unsplash.com/photo-1632053009581-2296c0952528?q=80&w=600&auto=format&fit=crop",
		imageAfter:  "https://images.unsplash.com/photo-1604654894610-df63bc536371?q=80&w=600&auto=format&fit=crop",
	},
	{
		title:       "Tratamiento de Durezas",
		description: "Eliminación de hiperqueratosis plantar severa y grietas en talones. Hidratación profunda.",
		imageBefore: "https://images.unsplash.com/photo-1549488656-d4198c60f269?q=80&w=600&auto=format&fit=crop",
		imageAfter:  "https://images.unsplash.com/photo-1596755389378-c31d21fd1273?q=80&w=600&auto=format&fit=crop",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	hasher := auth.NewBcryptHasher()

	services := content.NewServiceRepository(db)
	for _, s := range seedServices {
		if err := services.CreateIfMissing(ctx, s.name, s.description, s.price, s.category); err != nil {
			log.Fatalf("seeding service %q: %v", s.name, err)
		}
	}

	admins := auth.NewAdminRepository(db)
	for username, password := range seedAdmins {
		hash, err := hasher.Hash(password)
		if err != nil {
			log.Fatalf("hashing password for %q: %v", username, err)
		}
		if err := admins.Upsert(ctx, username, hash); err != nil {
			log.Fatalf("seeding admin %q: %v", username, err)
		}
	}

	site := content.NewSiteConfigRepository(db)
	if err := site.EnsureDefault(ctx, defaultSiteConfig); err != nil {
		log.Fatalf("seeding site config: %v", err)
	}

	cases := content.NewSuccessCaseRepository(db)
	count, err := cases.Count(ctx)
	if err != nil {
		log.Fatalf("counting success cases: %v", err)
	}
	if count == 0 {
		for _, c := range seedCases {
			if _, err := cases.Create(ctx, c.title, c.description, c.imageBefore, c.imageAfter); err != nil {
				log.Fatalf("seeding success case %q: %v", c.title, err)
			}
		}
	}

	log.Printf("Seed data inserted (Services, Admins, SiteConfig & SuccessCases)")
}
