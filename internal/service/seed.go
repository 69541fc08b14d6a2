package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
)

const (
	SeedAdminEmail    = "admin@joshibrothers.com"
	seedAdminPassword = "Admin@123"
)

// Seeder populates baseline reference data on first boot. Every insert is
// keyed on name or email uniqueness, so running it again is a no-op.
type Seeder struct {
	users      store.UserStore
	categories store.CategoryStore
	brands     store.BrandStore
	products   store.ProductStore
}

func NewSeeder(users store.UserStore, categories store.CategoryStore, brands store.BrandStore, products store.ProductStore) *Seeder {
	return &Seeder{users: users, categories: categories, brands: brands, products: products}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %v", err)
	}
	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %v", err)
	}
	if err := s.seedBrands(ctx); err != nil {
		return fmt.Errorf("seed brands: %v", err)
	}
	if err := s.seedProducts(ctx); err != nil {
		return fmt.Errorf("seed products: %v", err)
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	_, err := s.users.ByEmail(ctx, SeedAdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:           uuid.NewString(),
		Name:         "Admin",
		Email:        SeedAdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user created: %s", SeedAdminEmail)
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	categories := []model.Category{
		{Name: "Dairy", Description: "Fresh dairy products", Icon: "🧈"},
		{Name: "Fruits & Vegetables", Description: "Fresh produce", Icon: "🥦"},
		{Name: "Spices & Seasonings", Description: "Authentic spices", Icon: "🌶️"},
		{Name: "Frozen Foods", Description: "Frozen items", Icon: "🧊"},
		{Name: "Sauces & Condiments", Description: "Flavor enhancers", Icon: "🍅"},
		{Name: "Bakery Products", Description: "Fresh baked goods", Icon: "🍞"},
	}

	for _, c := range categories {
		if _, err := s.categories.ByName(ctx, c.Name); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		c.ID = uuid.NewString()
		if err := s.categories.Insert(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedBrands(ctx context.Context) error {
	brands := []model.Brand{
		{Name: "Ching's Secret", Logo: "/assets/Brand Images/ching'ssecret.jpg"},
		{Name: "Everest", Logo: "/assets/Brand Images/everest.jpg"},
		{Name: "Farm King", Logo: "/assets/Brand Images/farmking.jpg"},
		{Name: "Funfoods", Logo: "/assets/Brand Images/funfoods.jpg"},
		{Name: "MDH", Logo: "/assets/Brand Images/mdh.jpg"},
		{Name: "Knorr", Logo: "/assets/Brand Images/knorr.jpg"},
	}

	for _, b := range brands {
		if _, err := s.brands.ByName(ctx, b.Name); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		b.ID = uuid.NewString()
		if err := s.brands.Insert(ctx, &b); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	products := []model.Product{
		{
			Name:        "Fresh Cream",
			Description: "Premium quality fresh cream for cooking and baking",
			Price:       150.0,
			Category:    "Dairy",
			Brand:       "Farm King",
			ImageURL:    "/assets/productimages/dairy/cream.png",
			Stock:       50,
			Unit:        "500ml",
		},
		{
			Name:        "Milk Powder",
			Description: "High-quality milk powder for beverages and cooking",
			Price:       320.0,
			Category:    "Dairy",
			Brand:       "Farm King",
			ImageURL:    "/assets/productimages/dairy/milk-powder.png",
			Stock:       30,
			Unit:        "1kg",
		},
		{
			Name:        "Cheese",
			Description: "Fresh cheese for pizza and cooking",
			Price:       280.0,
			Category:    "Dairy",
			Brand:       "Go Cheese",
			ImageURL:    "/assets/productimages/dairy/cheese.png",
			Stock:       25,
			Unit:        "200g",
		},
		{
			Name:        "Butter",
			Description: "Premium butter for cooking and baking",
			Price:       180.0,
			Category:    "Dairy",
			Brand:       "Nutralite",
			ImageURL:    "/assets/productimages/dairy/butter.png",
			Stock:       40,
			Unit:        "100g",
		},
		{
			Name:        "Garam Masala",
			Description: "Authentic garam masala spice blend",
			Price:       85.0,
			Category:    "Spices & Seasonings",
			Brand:       "MDH",
			ImageURL:    "/assets/Brand Images/mdh.jpg",
			Stock:       100,
			Unit:        "100g",
		},
		{
			Name:        "Tomato Sauce",
			Description: "Rich tomato sauce for cooking",
			Price:       45.0,
			Category:    "Sauces & Condiments",
			Brand:       "Knorr",
			ImageURL:    "/assets/Brand Images/knorr.jpg",
			Stock:       60,
			Unit:        "200ml",
		},
	}

	for _, p := range products {
		if _, err := s.products.ByName(ctx, p.Name); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		p.ID = uuid.NewString()
		if err := s.products.Insert(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
