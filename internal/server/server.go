// Package server exposes the journal over HTTP: batch submission,
// statistics queries, directory management and a websocket feed of
// committed entries.
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rxtech-lab/argo-journal/internal/journal"
	"github.com/rxtech-lab/argo-journal/internal/journal/store"
	"github.com/rxtech-lab/argo-journal/internal/logger"
	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
	"go.uber.org/zap"
)

// Exporter writes the ledger tables to files on disk.
type Exporter interface {
	ExportParquet(path string) error
}

// Server serves the journal HTTP API.
type Server struct {
	coordinator *journal.Coordinator
	accounts    store.AccountDirectory
	assets      store.AssetDirectory
	exporter    Exporter
	config      journal.Config
	logger      *logger.Logger

	router     *mux.Router
	httpServer *http.Server
	listener   net.Listener

	upgrader      websocket.Upgrader
	wsConnections map[*websocket.Conn]bool
	wsMu          sync.Mutex
}

// NewServer wires the HTTP API over the given coordinator and directories.
func NewServer(
	coordinator *journal.Coordinator,
	accounts store.AccountDirectory,
	assets store.AssetDirectory,
	exporter Exporter,
	config journal.Config,
	logger *logger.Logger,
) *Server {
	s := &Server{
		coordinator:   coordinator,
		accounts:      accounts,
		assets:        assets,
		exporter:      exporter,
		config:        config,
		logger:        logger,
		upgrader:      websocket.Upgrader{},
		wsConnections: make(map[*websocket.Conn]bool),
	}

	s.router = s.buildRouter()

	// Committed entries fan out to websocket subscribers
	coordinator.SetCommitListener(s.broadcastEntry)

	return s
}

func (s *Server) buildRouter() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/entries/batch", s.handleSubmitBatch).Methods(http.MethodPost)
	api.HandleFunc("/entries", s.handleListEntries).Methods(http.MethodGet)
	api.HandleFunc("/statistics", s.handleStatistics).Methods(http.MethodGet)
	api.HandleFunc("/assets/popular", s.handlePopularAssets).Methods(http.MethodGet)
	api.HandleFunc("/accounts", s.handleListAccounts).Methods(http.MethodGet)
	api.HandleFunc("/accounts", s.handleCreateAccount).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{id}/balance", s.handleAccountBalance).Methods(http.MethodGet)
	api.HandleFunc("/assets", s.handleListAssets).Methods(http.MethodGet)
	api.HandleFunc("/assets", s.handleCreateAsset).Methods(http.MethodPost)
	api.HandleFunc("/export", s.handleExport).Methods(http.MethodPost)
	api.HandleFunc("/stream", s.handleStream).Methods(http.MethodGet)

	return r
}

// Start begins listening on the configured address. It returns once the
// listener is bound; serving continues on a background goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeServerStartFailed, "failed to bind listener", err)
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server stopped", zap.Error(err))
		}
	}()

	s.logger.Info("journal server listening", zap.String("addr", s.Addr()))

	return nil
}

// Addr returns the bound address, useful when listening on port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.config.ListenAddr
	}

	return s.listener.Addr().String()
}

// Stop closes all websocket connections and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.wsMu.Lock()
	for conn := range s.wsConnections {
		conn.Close()
	}
	s.wsConnections = make(map[*websocket.Conn]bool)
	s.wsMu.Unlock()

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// handleStream upgrades the connection and registers it for entry
// broadcasts. The connection stays registered until the peer goes away.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s.wsMu.Lock()
	s.wsConnections[conn] = true
	s.wsMu.Unlock()

	go func() {
		defer func() {
			s.wsMu.Lock()
			delete(s.wsConnections, conn)
			s.wsMu.Unlock()
			conn.Close()
		}()

		// Drain control frames; the feed is write-only
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) broadcastEntry(entry types.TradeEntry) {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	for conn := range s.wsConnections {
		if err := conn.WriteJSON(entry); err != nil {
			s.logger.Warn("dropping websocket subscriber", zap.Error(err))
			conn.Close()
			delete(s.wsConnections, conn)
		}
	}
}
