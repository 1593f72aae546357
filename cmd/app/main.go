package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trtech123/tos/api"
	"github.com/trtech123/tos/config"
	"github.com/trtech123/tos/internal/bootstrap"
	"github.com/trtech123/tos/internal/cache"
	"github.com/trtech123/tos/internal/kafka"
	"github.com/trtech123/tos/internal/llm"
	"github.com/trtech123/tos/internal/pricing"
	"github.com/trtech123/tos/internal/repository"
	"github.com/trtech123/tos/internal/service/booking"
	"github.com/trtech123/tos/internal/service/catalog"
	"github.com/trtech123/tos/internal/service/chat"
	"github.com/trtech123/tos/internal/service/transcribe"
	"github.com/trtech123/tos/internal/session"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.OpenAI.APIKey == "" {
		log.Printf("WARNING: no OpenAI API key configured, model calls will be rejected")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogRepo := repository.NewMemoryCatalogRepository(repository.SeedFlights(), repository.SeedHotels())
	if cfg.Database.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		catalogRepo = repository.NewCatalogRepository(pool)
	}

	var catalogCache catalog.Cache
	sessionOpts := []session.StoreOption{session.WithTTL(time.Duration(cfg.Session.TTLMinutes) * time.Minute)}
	if cfg.Redis.Enabled() {
		redisClient := cache.NewRedisClient(cfg.Redis)
		defer redisClient.Close()
		catalogCache = cache.NewRedisCache(redisClient, time.Duration(cfg.Booking.CatalogCacheTTL)*time.Second)
		sessionOpts = append(sessionOpts, session.WithRedisClient(redisClient))
	}

	store, err := session.NewStore(session.StoreType(cfg.Session.Driver), sessionOpts...)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer store.Close()

	catalogService := catalog.NewCatalogService(catalogRepo, catalogCache)

	var bookingOpts []booking.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka is not reachable, booking events may be lost: %v", err)
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}
	bookingService := booking.NewBookingService(store, catalogService, booking.Pricing{
		Taxes:              cfg.Booking.Taxes,
		Insurance:          cfg.Booking.Insurance,
		DefaultFlightPrice: cfg.Booking.DefaultFlightPrice,
	}, bookingOpts...)

	openaiClient := llm.NewOpenAIClient(cfg.OpenAI)
	var chatModel chat.Model = openaiClient
	if cfg.Chat.Provider == "gemini" {
		geminiClient, err := llm.NewGeminiClient(ctx, cfg.Gemini)
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
		chatModel = geminiClient
	}
	log.Printf("chat provider: %s", cfg.Chat.Provider)

	chatService := chat.NewChatService(chatModel, chat.Options{
		Temperature: cfg.Chat.Temperature,
		MaxTokens:   cfg.Chat.MaxTokens,
		Prompt: chat.PromptConfig{
			Agency:        chat.AgencyName,
			OriginCity:    cfg.Booking.OriginCity,
			OriginAirport: cfg.Booking.OriginAirport,
			Tiers:         pricing.Tiers(),
		},
	})
	transcribeService := transcribe.NewTranscribeService(openaiClient, cfg.Chat.Language)

	router := bootstrap.NewRouter(cfg, bootstrap.Handlers{
		Chat:       api.NewChatHandler(chatService),
		Transcribe: api.NewTranscribeHandler(transcribeService),
		Catalog:    api.NewCatalogHandler(catalogService),
		Booking:    api.NewBookingHandler(bookingService),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
