package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mealbridge/internal/config"
	"mealbridge/internal/db"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

// SeedAccount is one demo account in the fixture file. Passwords are stored
// in the fixture as plaintext and hashed here.
type SeedAccount struct {
	Username     string        `json:"username"`
	Password     string        `json:"password"`
	BusinessName string        `json:"business_name"`
	Location     string        `json:"location"`
	Role         string        `json:"role"`
	Listings     []SeedListing `json:"listings,omitempty"`
}

// SeedListing is one demo listing attached to a restaurant account.
type SeedListing struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Listing{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	log.Printf("Loading fixture from: %s", cfg.SeedFile)
	seeds, err := loadFixture(cfg.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}
	log.Printf("Loaded %d accounts from fixture", len(seeds))

	accountRepo := repository.NewAccountRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)
	ctx := context.Background()

	created, skipped, listings, err := seedAccounts(ctx, accountRepo, listingRepo, seeds)
	if err != nil {
		log.Fatalf("Failed to seed accounts: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New accounts created: %d", created)
	log.Printf("  - Existing accounts skipped: %d", skipped)
	log.Printf("  - Listings created: %d", listings)
}

// loadFixture reads and parses the seed fixture file.
func loadFixture(path string) ([]SeedAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var seeds []SeedAccount
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return seeds, nil
}

// seedAccounts creates fixture accounts and their listings. Accounts whose
// username already exists are left untouched so the script can be re-run.
func seedAccounts(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	listingRepo repository.ListingRepository,
	seeds []SeedAccount,
) (created, skipped, listings int, err error) {
	for _, seed := range seeds {
		role := model.Role(seed.Role)
		if !role.Valid() {
			log.Printf("Skipping account %q with unknown role %q", seed.Username, seed.Role)
			skipped++
			continue
		}

		if _, err := accountRepo.FindByUsername(ctx, seed.Username); err == nil {
			skipped++
			continue
		} else if err != gorm.ErrRecordNotFound {
			return created, skipped, listings, fmt.Errorf("check account %q: %w", seed.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, skipped, listings, fmt.Errorf("hash password for %q: %w", seed.Username, err)
		}

		account := &model.Account{
			Username:     seed.Username,
			PasswordHash: string(hash),
			BusinessName: seed.BusinessName,
			Location:     seed.Location,
			Role:         role,
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			return created, skipped, listings, fmt.Errorf("create account %q: %w", seed.Username, err)
		}
		created++

		for _, item := range seed.Listings {
			listing := &model.Listing{
				Name:        item.Name,
				Description: item.Description,
				Quantity:    item.Quantity,
				AccountID:   account.ID,
			}
			if err := listingRepo.Create(ctx, listing); err != nil {
				return created, skipped, listings, fmt.Errorf("create listing %q: %w", item.Name, err)
			}
			listings++
		}
	}
	return created, skipped, listings, nil
}
