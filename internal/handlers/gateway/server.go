package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/presence"
	"github.com/KirkDiggler/holidayhub/internal/repositories/photo"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// Config holds the gateway's dependencies and connection settings
type Config struct {
	Subscriber notify.Subscriber
	Presence   presence.Tracker

	// Photos is optional; without it /photos is not served
	Photos photo.Store

	// AllowedOrigins defaults to every origin
	AllowedOrigins []string

	// HeartbeatInterval is how often a live socket renews its presence lease
	HeartbeatInterval time.Duration

	WriteTimeout   time.Duration
	ReadTimeout    time.Duration
	MaxMessageSize int64
}

// Server relays change notifications and presence to websocket clients
type Server struct {
	subscriber notify.Subscriber
	presence   presence.Tracker
	photos     photo.Store

	upgrader       websocket.Upgrader
	allowedOrigins []string
	heartbeat      time.Duration
	writeTimeout   time.Duration
	readTimeout    time.Duration
	maxMessageSize int64
}

// New creates a gateway server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Subscriber == nil {
		return nil, errors.New("subscriber cannot be nil")
	}

	if cfg.Presence == nil {
		return nil, errors.New("presence tracker cannot be nil")
	}

	s := &Server{
		subscriber:     cfg.Subscriber,
		presence:       cfg.Presence,
		photos:         cfg.Photos,
		allowedOrigins: cfg.AllowedOrigins,
		heartbeat:      cfg.HeartbeatInterval,
		writeTimeout:   cfg.WriteTimeout,
		readTimeout:    cfg.ReadTimeout,
		maxMessageSize: cfg.MaxMessageSize,
	}
	if len(s.allowedOrigins) == 0 {
		s.allowedOrigins = []string{"*"}
	}
	if s.heartbeat <= 0 {
		s.heartbeat = 10 * time.Second
	}
	if s.writeTimeout <= 0 {
		s.writeTimeout = 10 * time.Second
	}
	if s.readTimeout <= 0 {
		s.readTimeout = 60 * time.Second
	}
	if s.maxMessageSize <= 0 {
		s.maxMessageSize = 1024
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	return s, nil
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Handler returns the routed, CORS-wrapped handler
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.GET("/healthz", s.serveHealthCheck)
	router.GET("/ws/:game", s.serveWebsocket)
	if s.photos != nil {
		router.GET("/photos/:bucket/*key", s.servePhoto)
	}

	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		log.Error().Interface("panic", i).Str("path", r.URL.Path).Msg("gateway handler panicked")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedOrigins: s.allowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(router)
}

// ListenAndServe serves on addr until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       10 * time.Minute,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("gateway listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) serveHealthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) servePhoto(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	output, err := s.photos.Get(r.Context(), &photo.GetInput{
		Bucket: p.ByName("bucket"),
		Key:    strings.TrimPrefix(p.ByName("key"), "/"),
	})
	if errors.Is(err, photo.ErrObjectNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to read photo")
		http.Error(w, "failed to read photo", http.StatusBadGateway)
		return
	}

	if mediaType, ok := photo.RasterMediaType(output.ContentType); ok {
		w.Header().Set("Content-Type", mediaType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", "attachment")
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output.Data)
}
