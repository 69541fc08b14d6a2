// Command seed loads the extended sample catalog on top of the baseline
// first-boot seeding. Safe to run repeatedly: products already present by
// name are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/db"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		fmt.Printf("Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	stores := postgres.New(pool)

	seeder := service.NewSeeder(stores.Users, stores.Categories, stores.Brands, stores.Products)
	if err := seeder.Run(ctx); err != nil {
		fmt.Printf("Baseline seeding failed: %v\n", err)
		os.Exit(1)
	}

	if err := seedExtraBrands(ctx, stores.Brands); err != nil {
		fmt.Printf("Extra brand seeding failed: %v\n", err)
		os.Exit(1)
	}

	added, err := seedExtraProducts(ctx, stores.Products)
	if err != nil {
		fmt.Printf("Extra product seeding failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample catalog loaded, %d products added\n", added)
}

func seedExtraBrands(ctx context.Context, brands store.BrandStore) error {
	extras := []model.Brand{
		{Name: "Amul", Logo: "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=100&h=100&fit=crop"},
		{Name: "Organic Valley", Logo: "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=100&h=100&fit=crop"},
		{Name: "Tata Salt", Logo: "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=100&h=100&fit=crop"},
		{Name: "Kellogg's", Logo: "https://images.unsplash.com/photo-1606787366850-de6330128bfc?w=100&h=100&fit=crop"},
	}

	for _, b := range extras {
		if _, err := brands.ByName(ctx, b.Name); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		b.ID = uuid.NewString()
		if err := brands.Insert(ctx, &b); err != nil {
			return err
		}
	}
	return nil
}

func seedExtraProducts(ctx context.Context, products store.ProductStore) (int, error) {
	extras := []model.Product{
		{
			Name:        "Whole Wheat Bread",
			Description: "Fresh whole wheat bread loaf",
			Price:       55.0,
			Category:    "Bakery Products",
			Brand:       "Farm King",
			ImageURL:    "https://images.unsplash.com/photo-1549931319-a545dcf3bc73?w=300&h=300&fit=crop",
			Stock:       45,
			Unit:        "400g",
		},
		{
			Name:        "Greek Yogurt",
			Description: "Creamy Greek yogurt with probiotics",
			Price:       95.0,
			Category:    "Dairy",
			Brand:       "Amul",
			ImageURL:    "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=300&h=300&fit=crop",
			Stock:       65,
			Unit:        "200g",
		},
		{
			Name:        "Organic Spinach",
			Description: "Fresh organic spinach leaves",
			Price:       45.0,
			Category:    "Fruits & Vegetables",
			Brand:       "Farm King",
			ImageURL:    "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=300&fit=crop",
			Stock:       90,
			Unit:        "500g",
		},
		{
			Name:        "Turmeric Powder",
			Description: "Pure turmeric powder for cooking",
			Price:       65.0,
			Category:    "Spices & Seasonings",
			Brand:       "Everest",
			ImageURL:    "https://images.unsplash.com/photo-1615485500704-8e990f9900f7?w=300&h=300&fit=crop",
			Stock:       80,
			Unit:        "100g",
		},
		{
			Name:        "Frozen Mixed Vegetables",
			Description: "Premium frozen mixed vegetables",
			Price:       120.0,
			Category:    "Frozen Foods",
			Brand:       "Farm King",
			ImageURL:    "https://images.unsplash.com/photo-1610348725531-843dff563e2c?w=300&h=300&fit=crop",
			Stock:       55,
			Unit:        "1kg",
		},
		{
			Name:        "Soy Sauce",
			Description: "Dark soy sauce for stir fries",
			Price:       75.0,
			Category:    "Sauces & Condiments",
			Brand:       "Ching's Secret",
			ImageURL:    "https://images.unsplash.com/photo-1598514982901-ae62764ae75e?w=300&h=300&fit=crop",
			Stock:       70,
			Unit:        "200ml",
		},
		{
			Name:        "Croissants",
			Description: "Buttery French croissants",
			Price:       110.0,
			Category:    "Bakery Products",
			Brand:       "Funfoods",
			ImageURL:    "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=300&h=300&fit=crop",
			Stock:       35,
			Unit:        "4 pcs",
		},
		{
			Name:        "Chili Powder",
			Description: "Hot red chili powder",
			Price:       60.0,
			Category:    "Spices & Seasonings",
			Brand:       "MDH",
			ImageURL:    "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=300&h=300&fit=crop",
			Stock:       95,
			Unit:        "100g",
		},
	}

	added := 0
	for _, p := range extras {
		if _, err := products.ByName(ctx, p.Name); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return added, err
		}
		p.ID = uuid.NewString()
		if err := products.Insert(ctx, &p); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
