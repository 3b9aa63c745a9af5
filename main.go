package main

import (
	"fmt"
	"log"

	"tableside/configs"
	"tableside/middlewares"
	"tableside/repository"
	"tableside/routes"
	"tableside/services"
	"tableside/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	slots := repository.NewSlotRepository(db)
	store, err := services.NewStoreService(db, slots, services.StoreConfig{
		Seed:           configs.DefaultMenu(),
		OrderDelay:     cfg.OrderDelay,
		StrictFirstAdd: cfg.StrictFirstAdd,
	})
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	// Live order feed for the staff dashboard
	hub := ws.NewOrderHub()
	go hub.Run()
	store.SetNotifier(hub)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, store, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
