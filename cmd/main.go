package main

import (
	"net/http"
	"os"

	"github.com/evserve/workshop-backend/internal/auth"
	"github.com/evserve/workshop-backend/internal/events"
	"github.com/evserve/workshop-backend/internal/handlers"
	"github.com/evserve/workshop-backend/internal/middleware"
	"github.com/evserve/workshop-backend/internal/store"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using process environment")
	}
	configureLogging()

	// Seeded in-memory store backs every collection by default; Mongo
	// takes over appointments and users when MONGO_URI is set.
	memory := store.NewMemoryStore()
	var appointments store.AppointmentStore = memory
	var users store.UserStore = memory

	if os.Getenv("MONGO_URI") != "" {
		client, err := store.ConnectMongo()
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to MongoDB")
		}
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "workshop"
		}
		db := client.Database(dbName)
		appointments = &store.MongoAppointmentStore{Collection: db.Collection("appointments")}
		users = &store.MongoUserStore{Collection: db.Collection("users")}
		log.WithField("database", dbName).Info("Connected to MongoDB")
	}

	var publisher handlers.TimelinePublisher
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		p, err := events.NewPublisher(broker, "workshop-backend")
		if err != nil {
			log.WithError(err).Warn("MQTT broker unavailable, timeline fan-out disabled")
		} else {
			publisher = p
			defer p.Close()
		}
	}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	workOrderHandler := handlers.NewWorkOrderHandler(memory, memory, publisher)
	scheduleHandler := handlers.NewScheduleHandler(appointments, memory)
	catalogHandler := handlers.NewCatalogHandler(memory)
	authHandler := handlers.NewAuthHandler(authService, users)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/workorders", workOrderHandler.List)
	mux.HandleFunc("/api/workorders/", workOrderHandler.Detail)
	mux.HandleFunc("/api/timeline", workOrderHandler.ListTimeline)
	mux.HandleFunc("/api/customers", catalogHandler.Customers)
	mux.HandleFunc("/api/customers/", catalogHandler.CustomerVehicles)
	mux.HandleFunc("/api/services", catalogHandler.Services)
	mux.HandleFunc("/api/schedule/resources", scheduleHandler.Resources)
	mux.HandleFunc("/api/schedule/check", scheduleHandler.Check)
	mux.HandleFunc("/api/schedule/appointments", scheduleHandler.Appointments)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := rateLimiter.RateLimit(120, 60)(authMiddleware.Authenticate(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.WithField("port", port).Info("Workshop backend listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func configureLogging() {
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
