package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"eventease/internal/adapters/blob"
	emailPkg "eventease/internal/adapters/email"
	web "eventease/internal/adapters/http"
	"eventease/internal/adapters/storage"
	bookingStore "eventease/internal/adapters/storage/booking"
	eventStore "eventease/internal/adapters/storage/event"
	venueStore "eventease/internal/adapters/storage/venue"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("EVENTEASE_DB", "eventease.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Wrap DB with query timing instrumentation
	timedDB := storage.NewTimedDB(db)

	stores := &web.Stores{
		EventStore:   eventStore.NewSQLiteStore(timedDB),
		VenueStore:   venueStore.NewSQLiteStore(timedDB),
		BookingStore: bookingStore.NewSQLiteStore(timedDB),
	}

	// Configure image blob storage: Azure when a connection string is set,
	// otherwise a logging noop for local development
	if connStr := os.Getenv("EVENTEASE_AZURE_STORAGE_CONNECTION_STRING"); connStr != "" {
		azStore, err := blob.NewAzureStore(connStr)
		if err != nil {
			log.Fatalf("failed to create blob store: %v", err)
		}
		for _, container := range []string{blob.EventContainer, blob.VenueContainer} {
			if err := azStore.EnsureContainer(context.Background(), container); err != nil {
				log.Fatalf("failed to ensure blob container %s: %v", container, err)
			}
		}
		web.SetBlobStore(azStore)
		log.Println("Blob store configured (Azure)")
	} else {
		web.SetBlobStore(blob.NewNoopStore())
		if os.Getenv("EVENTEASE_ENV") == "production" {
			log.Println("WARNING: EVENTEASE_AZURE_STORAGE_CONNECTION_STRING is not set, image uploads are DISABLED in production")
		} else {
			log.Println("Blob store configured (noop, set EVENTEASE_AZURE_STORAGE_CONNECTION_STRING for real storage)")
		}
	}

	// Configure email sender for booking notifications
	resendKey := os.Getenv("EVENTEASE_RESEND_KEY")
	emailFrom := envOrDefault("EVENTEASE_RESEND_FROM", "EventEase <noreply@eventease.example>")
	emailNotify := envOrDefault("EVENTEASE_NOTIFY_TO", "bookings@eventease.example")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, emailNotify)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, emailNotify)
		log.Println("Email sender configured (noop, set EVENTEASE_RESEND_KEY for real delivery)")
	}

	// Create HTTP handler with middleware
	mux := web.NewMux("static", stores)

	// Start server
	addr := envOrDefault("EVENTEASE_ADDR", ":8080")
	log.Printf("EventEase %s starting on %s (env=%s)", version, addr, envOrDefault("EVENTEASE_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
