package services

import (
	"context"
	"errors"
	"log"

	"github.com/CompileLord/Test-programm-for-Schools/internal/models"
	"github.com/CompileLord/Test-programm-for-Schools/internal/store"

	"gorm.io/gorm"
)

type CategoryService struct {
	resolver *store.Resolver
}

func NewCategoryService(resolver *store.Resolver) *CategoryService {
	return &CategoryService{resolver: resolver}
}

// List returns the local categories. A fresh installation has none, so the
// first call copies whatever the online store has; failures there are
// logged and ignored.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	db := s.resolver.Local().DB
	s.seedFromOnline(ctx)

	var categories []models.Category
	if err := db.Order("title ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Explore returns every local category together with its quizzes.
func (s *CategoryService) Explore(ctx context.Context) ([]models.Category, error) {
	s.seedFromOnline(ctx)

	var categories []models.Category
	err := s.resolver.Local().DB.
		Order("title ASC").
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_created DESC")
		}).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(title, imageURL string) (*models.Category, error) {
	db := s.resolver.Local().DB

	var existing models.Category
	if err := db.Where("title = ?", title).First(&existing).Error; err == nil {
		return nil, errors.New("category already exists")
	}

	category := models.Category{Title: title, ImageURL: imageURL}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) seedFromOnline(ctx context.Context) {
	db := s.resolver.Local().DB

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	online, err := s.resolver.Online(ctx)
	if err != nil {
		return
	}

	var remote []models.Category
	if err := online.DB.Find(&remote).Error; err != nil {
		log.Printf("failed to seed categories from online store: %v", err)
		return
	}
	for _, cat := range remote {
		db.Create(&models.Category{Title: cat.Title, ImageURL: cat.ImageURL})
	}
}
