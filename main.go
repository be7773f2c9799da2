package main

import (
	"fmt"
	"os"
	"time"

	auction "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/auctionService"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/config"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/repository"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/seed"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/server"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	store := repository.NewMemoryStore(seed.SampleAuctions(time.Now()), seed.SampleUsers())

	auctionSvc := auction.NewAuctionService(store,
		auction.WithLatency(cfg.SimulatedLatency),
	)

	router := server.SetupRouter(auctionSvc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
