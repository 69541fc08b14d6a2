package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/api"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/db"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store/memory"
	"github.com/Gokul0616/JOSHI-BROTHERS/internal/store/postgres"
	"github.com/Gokul0616/JOSHI-BROTHERS/pkg/middleware"
)

type stores struct {
	users      store.UserStore
	products   store.ProductStore
	categories store.CategoryStore
	brands     store.BrandStore
	cart       store.CartStore
	orders     store.OrderStore
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	ctx := context.Background()

	st, cleanup, err := openStores(ctx)
	if err != nil {
		log.Fatal("store init failed: ", err)
	}
	defer cleanup()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-here"
		log.Println("JWT_SECRET not set, using default (do not do this in production)")
	}

	tokens := service.NewTokenService(secret)
	authService := service.NewAuthService(st.users, tokens)
	catalogService := service.NewCatalogService(st.products, st.categories, st.brands)
	cartService := service.NewCartService(st.cart, st.products)
	orderService := service.NewOrderService(st.orders, st.cart, st.products)
	adminService := service.NewAdminService(st.users, st.products, st.categories, st.brands, st.orders)

	seeder := service.NewSeeder(st.users, st.categories, st.brands, st.products)
	if err := seeder.Run(ctx); err != nil {
		log.Fatal("seeding failed: ", err)
	}

	r := gin.Default()
	r.Use(api.CORSMiddleware())
	r.SetTrustedProxies(nil)

	api.RegisterRoutes(r.Group("/api"), api.Handlers{
		Auth:    api.NewAuthHandler(authService),
		Catalog: api.NewCatalogHandler(catalogService),
		Cart:    api.NewCartHandler(cartService),
		Orders:  api.NewOrderHandler(orderService, adminService),
		Gate:    middleware.NewAuthMiddleware(tokens),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server shutdown complete")
}

func openStores(ctx context.Context) (stores, func(), error) {
	if os.Getenv("STORE") == "memory" {
		log.Println("Using in-memory store; data will not survive a restart")
		m := memory.New()
		return stores{
			users:      m.Users,
			products:   m.Products,
			categories: m.Categories,
			brands:     m.Brands,
			cart:       m.Cart,
			orders:     m.Orders,
		}, func() {}, nil
	}

	pool, err := db.Connect(ctx)
	if err != nil {
		return stores{}, nil, err
	}
	p := postgres.New(pool)
	return stores{
		users:      p.Users,
		products:   p.Products,
		categories: p.Categories,
		brands:     p.Brands,
		cart:       p.Cart,
		orders:     p.Orders,
	}, pool.Close, nil
}
