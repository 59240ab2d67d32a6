package rest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	_ "practicecoach/docs"
	"practicecoach/internal/config"
	"practicecoach/internal/metrics"
	"practicecoach/internal/service"
	"practicecoach/internal/transport/rest/handler"
	"practicecoach/internal/transport/rest/middleware"
	"practicecoach/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Config             *config.Config
	Logger             *zap.Logger
	QuestionBank       *service.QuestionBank
	AuthService        *service.AuthService
	PracticeService    *service.PracticeService
	SessionService     *service.SessionService
	ProfileService     *service.ProfileService
	InstitutionService *service.InstitutionService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.Logger)
	questionHandler := handler.NewQuestionHandler(c.QuestionBank, c.Config.Practice.DefaultQuestionCount, c.Config.Practice.MaxQuestionCount)
	analysisHandler := handler.NewAnalysisHandler(c.PracticeService, c.Logger)
	practiceHandler := handler.NewPracticeHandler(c.PracticeService, c.Logger)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	profileHandler := handler.NewProfileHandler(c.ProfileService)
	institutionHandler := handler.NewInstitutionHandler(c.InstitutionService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Config.Server.CORSOrigins, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)
	limiter := middleware.NewRateLimiter(c.Config.RateLimit.Requests, c.Config.RateLimit.Window)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config.Server.CORSOrigins))
	r.Use(middleware.RequestLogger(c.Logger))
	r.Use(metrics.Middleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.HandleFunc("/swagger/doc.json", swaggerDoc).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions", questionHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/shuffled", questionHandler.Shuffled).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/stats", questionHandler.Stats).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/email", questionHandler.Emails).Methods("GET", "OPTIONS")
	v1.HandleFunc("/questions/email/shuffled", questionHandler.ShuffledEmails).Methods("GET", "OPTIONS")
	v1.HandleFunc("/analysis/level", analysisHandler.Level).Methods("GET", "OPTIONS")

	// WebSocket route (public with token in query param)
	v1.HandleFunc("/ws", wsHandler.Serve).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)
	userRoutes.Use(limiter.Limit)

	userRoutes.HandleFunc("/analysis", analysisHandler.Analyze).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/practice", practiceHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/practice/{runId}", practiceHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/practice/{runId}/answers", practiceHandler.Submit).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/practice/{runId}/complete", practiceHandler.Complete).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/sessions", sessionHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard", sessionHandler.Dashboard).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile", profileHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile", profileHandler.Update).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/institutions", institutionHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/institutions", institutionHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/institutions/{id}", institutionHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := "*"
	if len(origins) > 0 {
		allowed = strings.Join(origins, ", ")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowed == "*":
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && containsFold(origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) || v == "*" {
			return true
		}
	}
	return false
}
