package main

import (
	"context"
	"log"

	"contactbook/internal/auth"
	"contactbook/internal/config"
	"contactbook/internal/db"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

// Seeds a demo user (demo@example.com / secret1) with a few contacts for
// local development. Safe to run twice: an existing demo user is reused.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Contact{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	user, err := userRepo.FindByEmail(ctx, "demo@example.com")
	if err != nil {
		digest, err := hasher.Hash("secret1")
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user = &model.User{Email: "demo@example.com", PasswordHash: digest}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		log.Printf("created demo user %s", user.ID)
	} else {
		log.Printf("demo user already exists: %s", user.ID)
	}

	contacts := []model.Contact{
		{FirstName: "John", LastName: "Doe", Phone: "0612345678", OwnerID: user.ID},
		{FirstName: "Jane", LastName: "Smith", Phone: "0698765432", OwnerID: user.ID},
		{FirstName: "Alan", LastName: "Turing", Phone: "+4412345678901", OwnerID: user.ID},
	}

	existing, err := contactRepo.ListByOwner(ctx, user.ID)
	if err != nil {
		log.Fatalf("list contacts: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("demo user already has %d contacts, nothing to do", len(existing))
		return
	}

	for i := range contacts {
		if err := contactRepo.Create(ctx, &contacts[i]); err != nil {
			log.Fatalf("create contact %s %s: %v", contacts[i].FirstName, contacts[i].LastName, err)
		}
	}
	log.Printf("seeded %d contacts for %s", len(contacts), user.Email)
}
