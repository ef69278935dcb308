package main

import (
	"fmt"
	"log"

	"github.com/Dung-L3/SEP490-G20-sub000/configs"
	"github.com/Dung-L3/SEP490-G20-sub000/routes"
	"github.com/Dung-L3/SEP490-G20-sub000/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// kitchen display feed
	hub := ws.NewKitchenHub()
	go hub.Run()

	svc := routes.BuildServices(db, cfg, hub)

	// background work: overdue-reservation sweep, OTP expiry
	svc.Reservations.StartSweeper(cfg.SweepInterval)
	defer svc.Reservations.StopSweeper()
	svc.Codes.StartJanitor(cfg.OTPTTL)
	defer svc.Codes.StopJanitor()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, hub, svc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
