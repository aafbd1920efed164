package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/pdavydov/leaselint/internal/assess"
	"github.com/pdavydov/leaselint/internal/extract"
	"github.com/pdavydov/leaselint/internal/model"
	"github.com/pdavydov/leaselint/internal/oracle"
	"github.com/pdavydov/leaselint/internal/rules"
	"github.com/pdavydov/leaselint/internal/store"
)

// Server is the HTTP API around the assessment engine
type Server struct {
	cfg        model.ServerConfig
	assessor   *assess.Assessor
	aggregator *assess.Aggregator
	registry   *rules.Registry
	extractor  *extract.DocumentExtractor
	consultant oracle.Consultant // nil when no oracle is configured
	store      *store.Store
	defaultJur string
}

// New creates a server around the given engine components. consultant and
// db may be nil; the corresponding endpoints degrade gracefully.
func New(cfg model.ServerConfig, defaultJurisdiction string, registry *rules.Registry, consultant oracle.Consultant, db *store.Store) *Server {
	assessor := assess.NewAssessor(consultant)
	return &Server{
		cfg:        cfg,
		assessor:   assessor,
		aggregator: assess.NewAggregator(assessor, registry, 4),
		registry:   registry,
		extractor:  extract.NewDocumentExtractor(),
		consultant: consultant,
		store:      db,
		defaultJur: defaultJurisdiction,
	}
}

// Router builds the HTTP route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(Logger)
	router.Use(Recoverer)
	router.Use(CORS)
	if s.cfg.RateLimit > 0 {
		router.Use(RateLimit(s.cfg.RateLimit, s.cfg.RateBurst))
	}
	router.Use(Auth(s.cfg.AuthToken))

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/jurisdictions", s.handleJurisdictions).Methods(http.MethodGet)
	api.HandleFunc("/assess", s.handleAssessContract).Methods(http.MethodPost)
	api.HandleFunc("/assess/clause", s.handleAssessClause).Methods(http.MethodPost)
	api.HandleFunc("/extract", s.handleExtract).Methods(http.MethodPost)
	api.HandleFunc("/analyses", s.handleListAnalyses).Methods(http.MethodGet)
	api.HandleFunc("/analyses/{id}", s.handleGetAnalysis).Methods(http.MethodGet)
	api.HandleFunc("/analyses/{id}", s.handleDeleteAnalysis).Methods(http.MethodDelete)
	api.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)

	return router
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting leaselint API on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}
