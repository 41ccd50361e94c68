package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/backend"
	"aroma_front_end/internal/cache"
	"aroma_front_end/internal/cart"
	"aroma_front_end/internal/config"
	"aroma_front_end/internal/handlers"
	"aroma_front_end/internal/handlers/admin"
	"aroma_front_end/internal/routes"
)

func main() {
	config.Load()

	if err := cache.InitRedis(); err != nil {
		log.Fatal("❌ Could not initialize Redis: ", err)
	}
	defer cache.CloseRedis()

	base := config.BackendBase()
	log.Println("✅ Backend API base:", base)

	client := backend.New(base)
	store := cart.NewStore(cache.RedisClient)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/images", "./web/images")

	routes.RegisterRoutes(r, handlers.NewShop(client, store), admin.NewHandler(client))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Storefront running on port", port)
	r.Run(":" + port)
}
