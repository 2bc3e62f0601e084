package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"pub-manager/config"
	httpapi "pub-manager/internal/api/http"
	"pub-manager/internal/service"
	"pub-manager/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewMenuCache(config.MustInitRedis(), 5*time.Minute)

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter("order-events"); writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}
	qr := service.DefaultQRGenerator{BaseURL: baseURL}

	tables := service.NewTableService(repository)
	guests := service.NewGuestService(repository, repository)
	menu := service.NewMenuService(repository, repository, cache)
	waiters := service.NewWaiterService(repository)
	orders := service.NewOrderService(repository, repository, repository, repository, qr, publisher)
	billing := service.NewBillingService(repository, repository, repository, repository, publisher)

	kitchen := service.NewKitchenSweep(
		repository,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		10*time.Second,
		0.5,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go kitchen.Run(ctx)

	handler := httpapi.NewHandler(tables, guests, menu, waiters, orders, billing)
	httpapi.StartServer(config.ListenAddr(), httpapi.NewRouter(handler))
}
