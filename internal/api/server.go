package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/handler"
)

const shutdownGrace = 5 * time.Second

// Server wraps the HTTP server with start/stop lifecycle management.
type Server struct {
	server *http.Server
	logger *logrus.Entry
}

// NewServer returns a Server listening on the given port with the router
// handling requests.
func NewServer(port string, router http.Handler, l *logrus.Entry) *Server {
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: l,
	}
}

// Addr exposes the listening address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start spawns the server which will listen on the TCP address s.Addr
// for incoming requests.
func (s *Server) Start() {
	s.logger.Infof("starting %v service", handler.ServiceName)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.WithError(err).Error("http server terminated")
		}
	}()
	s.logger.Infof("listening on port %v", s.server.Addr)
}

// Stop gracefully shuts down the HTTP server, waiting for in-flight
// requests up to the shutdown grace period.
func (s *Server) Stop(sig os.Signal) {
	s.logger.WithFields(logrus.Fields{"signal": sig}).Infof("stopping %v service", handler.ServiceName)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.WithFields(logrus.Fields{"error": err}).Error("error stopping server")
	}
}
