package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/sparkfel/schedule1-reverse-search/config"
	"github.com/sparkfel/schedule1-reverse-search/search"
)

// Server is the HTTP/WebSocket presentation layer over the search engine.
type Server struct {
	cfg      *config.Config
	catalog  search.Catalog
	validate *validator.Validate
	upgrader websocket.Upgrader
}

// New builds a server around an already-loaded catalog.
func New(cfg *config.Config, cat search.Catalog) *Server {
	return &Server{
		cfg:      cfg,
		catalog:  cat,
		validate: validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // frontend is served from a different origin in development
			},
		},
	}
}

// Routes returns the server's handler tree.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/effects", s.handleEffects)
	mux.HandleFunc("/ingredients", s.handleIngredients)
	mux.HandleFunc("/products", s.handleProducts)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe runs the server on the configured port.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	log.Printf("Server listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Routes())
}
