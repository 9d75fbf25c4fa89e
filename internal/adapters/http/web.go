package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventease/internal/adapters/blob"
	"eventease/internal/adapters/email"
	"eventease/internal/adapters/http/middleware"
	bookingStore "eventease/internal/adapters/storage/booking"
	eventStore "eventease/internal/adapters/storage/event"
	venueStore "eventease/internal/adapters/storage/venue"
)

// Stores holds all storage dependencies.
type Stores struct {
	EventStore   eventStore.Store
	VenueStore   venueStore.Store
	BookingStore bookingStore.Store
}

// loadCSRFKey reads the CSRF secret from EVENTEASE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("EVENTEASE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("EVENTEASE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("EVENTEASE_ENV") == "production" {
		log.Fatal("EVENTEASE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set EVENTEASE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global blob store instance (set by SetBlobStore)
var blobStore blob.Store = blob.NewNoopStore()

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailNotifyAddress string

// SetBlobStore sets the global image blob store for the application.
func SetBlobStore(store blob.Store) {
	blobStore = store
}

// SetEmailSender sets the global email sender and booking notification addresses.
func SetEmailSender(sender email.Sender, from, notify string) {
	emailSender = sender
	emailFromAddress = from
	emailNotifyAddress = notify
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.Handle("GET /metrics", promhttp.Handler())
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RateLimit -> CSRF -> SecurityHeaders -> Timing -> Mux.
	// Timing sits innermost so it observes the mux's matched route pattern;
	// csrf hands its own derived request to inner handlers.
	return middleware.Chain(mux,
		middleware.Timing(),
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
	)
}
