package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wrapcommand/wrapcommandai/internal/ai"
	"github.com/wrapcommand/wrapcommandai/internal/config"
	"github.com/wrapcommand/wrapcommandai/internal/database"
	"github.com/wrapcommand/wrapcommandai/internal/events"
	"github.com/wrapcommand/wrapcommandai/internal/handlers"
	"github.com/wrapcommand/wrapcommandai/internal/messaging/klaviyo"
	"github.com/wrapcommand/wrapcommandai/internal/messaging/resend"
	"github.com/wrapcommand/wrapcommandai/internal/messaging/twilio"
	"github.com/wrapcommand/wrapcommandai/internal/models"
	"github.com/wrapcommand/wrapcommandai/internal/render"
	"github.com/wrapcommand/wrapcommandai/internal/services/woo"
	"github.com/wrapcommand/wrapcommandai/internal/stage"
	ws "github.com/wrapcommand/wrapcommandai/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Order{},
		&models.Quote{},
		&models.Project{},
		&models.Campaign{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Set up HTTP router
	router := handlers.NewRouter(db, cfg)

	// 5. Dashboard websocket hub
	hub := ws.NewHub()
	go hub.Run()
	router.SetHub(hub)

	// 6. Order event stream (optional; disabled without brokers)
	producer, err := events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		log.Printf("⚠️ Events: failed to connect to Kafka: %v", err)
	} else if producer != nil {
		log.Println("✅ Events: Kafka producer connected")
	}
	router.SetEventProducer(producer)

	// 7. AI text completion (optional)
	if cfg.AI.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(context.Background(), cfg.AI.GeminiAPIKey, cfg.AI.Model)
		if err != nil {
			log.Printf("⚠️ AI: failed to init Gemini client: %v", err)
		} else {
			defer gemini.Close()
			router.SetCompletor(gemini)
			log.Println("✅ AI: Gemini client ready")
		}
	} else {
		log.Println("AI disabled: GEMINI_API_KEY not configured")
	}

	// 8. Creatomate video renders (optional)
	if cfg.Creatomate.APIKey != "" {
		renderer, err := render.NewClient(cfg.Creatomate.APIKey, cfg.Creatomate.TemplateID)
		if err != nil {
			log.Printf("⚠️ Render: failed to init Creatomate client: %v", err)
		} else {
			router.SetRenderer(renderer)
			log.Println("✅ Render: Creatomate client ready")
		}
	}

	// 9. Messaging providers
	if cfg.Twilio.AccountSID != "" {
		p, err := twilio.NewProvider(twilio.Config{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromNumber: cfg.Twilio.FromNumber,
		})
		if err != nil {
			log.Printf("⚠️ Messaging: failed to init Twilio: %v", err)
		} else if err := router.Providers().Register(p); err != nil {
			log.Printf("⚠️ Messaging: failed to register Twilio: %v", err)
		} else {
			log.Println("✅ Messaging: Twilio provider registered")
		}
	}
	if cfg.Resend.APIKey != "" {
		p, err := resend.NewProvider(resend.Config{
			APIKey:    cfg.Resend.APIKey,
			FromEmail: cfg.Resend.FromEmail,
		})
		if err != nil {
			log.Printf("⚠️ Messaging: failed to init Resend: %v", err)
		} else if err := router.Providers().Register(p); err != nil {
			log.Printf("⚠️ Messaging: failed to register Resend: %v", err)
		} else {
			log.Println("✅ Messaging: Resend provider registered")
		}
	}
	if cfg.Klaviyo.APIKey != "" {
		p, err := klaviyo.NewProvider(klaviyo.Config{
			APIKey: cfg.Klaviyo.APIKey,
			ListID: cfg.Klaviyo.ListID,
		})
		if err != nil {
			log.Printf("⚠️ Messaging: failed to init Klaviyo: %v", err)
		} else if err := router.Providers().Register(p); err != nil {
			log.Printf("⚠️ Messaging: failed to register Klaviyo: %v", err)
		} else {
			log.Println("✅ Messaging: Klaviyo provider registered")
		}
	}

	// 10. Start WooCommerce Sync Service (Background)
	wooService := woo.NewSyncService(db, woo.Config{
		StoreURL:       cfg.Woo.StoreURL,
		ConsumerKey:    cfg.Woo.ConsumerKey,
		ConsumerSecret: cfg.Woo.ConsumerSecret,
		SyncInterval:   cfg.Woo.SyncInterval,
	})
	wooService.OnStageChange = func(change woo.StageChange) {
		hub.BroadcastJSON(map[string]interface{}{
			"type":         "order_stage_changed",
			"order_number": change.Order.OrderNumber,
			"stage":        change.NewStage,
			"label":        stage.CustomerLabel(change.NewStage),
		})
		producer.PublishStageChange(events.OrderEvent{
			OrderNumber: change.Order.OrderNumber,
			OldStage:    change.OldStage,
			NewStage:    change.NewStage,
			At:          change.At,
		})
	}
	wooService.Start()
	router.SetWooService(wooService)

	// 11. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("⚠️ HTTP server shutdown error: %v", err)
	}

	wooService.Stop()

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("⚠️ Events: producer close error: %v", err)
		}
	}

	if err := db.Close(); err != nil {
		log.Printf("⚠️ Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
