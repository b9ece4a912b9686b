package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopmk/go-backoffice/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DBSeed populates the store with the fixed sample data, one entity type at a
// time. Each type is gated on its table being completely empty, so running
// the seed again (next startup, or the seed CLI command) is a no-op. Note the
// gate is per table, not per row: rows deleted by hand are not restored.
func DBSeed(ctx context.Context, db *gorm.DB) error {
	if err := seedCategories(ctx, db); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	if err := seedManufacturers(ctx, db); err != nil {
		return fmt.Errorf("failed to seed manufacturers: %w", err)
	}
	if err := seedUsers(ctx, db); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}

func seedCategories(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{ID: uuid.New().String(), Name: "Sports", Description: "Sports category"},
		{ID: uuid.New().String(), Name: "Food", Description: "Food category"},
		{ID: uuid.New().String(), Name: "Books", Description: "Books category"},
	}
	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d categories", len(categories))
	return nil
}

func seedManufacturers(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Manufacturer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	manufacturers := []models.Manufacturer{
		{ID: uuid.New().String(), Name: "Nike", Address: "USA"},
		{ID: uuid.New().String(), Name: "Coca Cola", Address: "USA"},
		{ID: uuid.New().String(), Name: "Literatura", Address: "MK"},
	}
	if err := db.WithContext(ctx).Create(&manufacturers).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d manufacturers", len(manufacturers))
	return nil
}

func seedUsers(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	fixtures := []struct {
		username, password, name, surname string
		role                              models.Role
	}{
		{"elena.atanasoska", "ea", "Elena", "Atanasoska", models.RoleUser},
		{"darko.sasanski", "ds", "Darko", "Sasanski", models.RoleUser},
		{"ana.todorovska", "at", "Ana", "Todorovska", models.RoleUser},
		{"admin", "admin", "admin", "admin", models.RoleAdmin},
	}

	users := make([]models.User, 0, len(fixtures))
	for _, f := range fixtures {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.User{
			ID:       uuid.New().String(),
			Username: f.username,
			Password: string(hash),
			Name:     f.name,
			Surname:  f.surname,
			Role:     f.role,
		})
	}
	if err := db.WithContext(ctx).Create(&users).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d users", len(users))
	return nil
}
