package main

import (
	"context"
	"go-seat-booking/config"
	"go-seat-booking/internal/database"
	"go-seat-booking/internal/handler"
	"go-seat-booking/internal/queue"
	"go-seat-booking/internal/repository"
	"go-seat-booking/internal/service"
	"go-seat-booking/internal/worker"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	bookingQueue, err := queue.NewRedisStreamBookingQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize booking queue: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	seatRepo := repository.NewSeatRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	eventService := service.NewEventService(eventRepo)
	seatService := service.NewSeatService(pool, seatRepo, eventRepo)
	bookingService := service.NewBookingService(pool, bookingRepo, seatRepo, bookingQueue)
	notificationService := service.NewNotificationService(notificationRepo, seatRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notificationWorker := worker.NewNotificationWorker(notificationService, bookingQueue)
	if err := notificationWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewSeatHandler(seatService).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router)
	handler.NewNotificationHandler(notificationService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
