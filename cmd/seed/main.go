package main

import (
	"context"
	"fmt"
	"log"

	"courtbook/internal/config"
	"courtbook/internal/database"
	"courtbook/internal/domain"
	"courtbook/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payment_notifications")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM courts")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	courts := repository.NewCourtRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@courtbook.lk",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Venue Admin",
		IsActive:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("seed admin:", err)
	}
	log.Println("Admin created: admin@courtbook.lk / admin123")

	customerEmails := []string{"nimal@gmail.com", "sanduni@gmail.com", "kasun@yahoo.com"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		customer := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer,
			Name:         fmt.Sprintf("Customer %d", i+1),
			Phone:        fmt.Sprintf("07112345%02d", i+10),
			IsActive:     true,
		}
		if err := users.Create(ctx, customer); err != nil {
			log.Fatal("seed customer:", err)
		}
	}

	log.Println("Creating courts...")
	seedCourts := []domain.Court{
		{
			Name:         "Arena A Futsal",
			Sport:        domain.SportFutsal,
			Surface:      "artificial turf",
			Indoor:       false,
			Description:  "Full-size outdoor futsal pitch with floodlights",
			PricePerHour: 4000,
			IsActive:     true,
		},
		{
			Name:         "Court 1 Badminton",
			Sport:        domain.SportBadminton,
			Surface:      "wooden",
			Indoor:       true,
			Description:  "Air-conditioned indoor badminton court",
			PricePerHour: 1500,
			IsActive:     true,
		},
		{
			Name:         "Court 2 Badminton",
			Sport:        domain.SportBadminton,
			Surface:      "wooden",
			Indoor:       true,
			PricePerHour: 1500,
			IsActive:     true,
		},
		{
			Name:         "Center Tennis Court",
			Sport:        domain.SportTennis,
			Surface:      "clay",
			Indoor:       false,
			Description:  "Tournament-grade clay court",
			PricePerHour: 3000,
			IsActive:     true,
		},
		{
			Name:         "Basketball Half Court",
			Sport:        domain.SportBasketball,
			Surface:      "concrete",
			Indoor:       false,
			PricePerHour: 2000,
			IsActive:     true,
		},
	}
	for i := range seedCourts {
		if err := courts.Create(ctx, &seedCourts[i]); err != nil {
			log.Fatal("seed court:", err)
		}
	}

	log.Printf("Done. Seeded %d users and %d courts.", 1+len(customerEmails), len(seedCourts))
}
