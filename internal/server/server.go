//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/scaffold"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

type Storage interface {
	CreateSeason(ctx context.Context, draft storage.SeasonDraft) (*storage.SeasonResult, error)
	UpdateSeason(ctx context.Context, id int64, draft storage.SeasonDraft) (*storage.SeasonResult, error)
	RebuildTeamSchedule(ctx context.Context, seasonID int64) (*storage.ScheduleResult, error)
	TeamRoster(ctx context.Context, seasonID int64) ([]storage.RosterEntry, error)
	UpdatePreferences(ctx context.Context, inhabitantID int64, prefs *weekday.Map[scaffold.DinnerMode]) (*storage.ReconcileResult, error)
	Book(ctx context.Context, req storage.BookingRequest) (*storage.ReconcileResult, error)
	HouseholdOrders(ctx context.Context, householdID int64) ([]storage.OrderView, error)
	Headcount(ctx context.Context, householdID int64) (weekday.Map[scaffold.Headcount], error)
	OrderHistory(ctx context.Context, inhabitantID, dinnerEventID int64) ([]storage.HistoryView, error)
	ScaffoldHousehold(ctx context.Context, householdID int64) (*storage.ReconcileResult, error)
	ScaffoldAll(ctx context.Context) (*storage.ScaffoldSummary, error)
	Heal(ctx context.Context, seasonID int64, dryRun bool) (*storage.HealReport, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (int64, bool, error)
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	validate     *validator.Validate
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage, userRepo UserRepo, logger *zap.Logger) *Server {
	return &Server{
		storage:      storage,
		userRepo:     userRepo,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       logger,
		AuditManager: NewAuditManager(logger, 2, 5, 500*time.Millisecond),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/seasons", s.handleCreateSeason).Methods(http.MethodPost).Name("createSeason")
	api.HandleFunc("/seasons/{id:[0-9]+}", s.handleUpdateSeason).Methods(http.MethodPut).Name("updateSeason")
	api.HandleFunc("/seasons/{id:[0-9]+}/rebuild", s.handleRebuildSchedule).Methods(http.MethodPost).Name("rebuildSchedule")
	api.HandleFunc("/seasons/{id:[0-9]+}/roster", s.handleTeamRoster).Methods(http.MethodGet).Name("teamRoster")
	api.HandleFunc("/seasons/{id:[0-9]+}/heal", s.handleHeal).Methods(http.MethodPost).Name("heal")

	api.HandleFunc("/inhabitants/{id:[0-9]+}/preferences", s.handleUpdatePreferences).Methods(http.MethodPut).Name("updatePreferences")
	api.HandleFunc("/inhabitants/{id:[0-9]+}/events/{eventID:[0-9]+}/history", s.handleOrderHistory).Methods(http.MethodGet).Name("orderHistory")

	api.HandleFunc("/bookings", s.handleBook).Methods(http.MethodPost).Name("book")

	api.HandleFunc("/households/{id:[0-9]+}/orders", s.handleHouseholdOrders).Methods(http.MethodGet).Name("householdOrders")
	api.HandleFunc("/households/{id:[0-9]+}/headcount", s.handleHeadcount).Methods(http.MethodGet).Name("headcount")
	api.HandleFunc("/households/{id:[0-9]+}/scaffold", s.handleScaffoldHousehold).Methods(http.MethodPost).Name("scaffoldHousehold")

	api.HandleFunc("/maintenance/scaffold", s.handleScaffoldAll).Methods(http.MethodPost).Name("scaffoldAll")

	return router
}

type ctxKey int

const userIDKey ctxKey = iota

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		userID, valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil {
			s.logger.Error("validate user", zap.String("username", username), zap.Error(err))
		}
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func userFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
