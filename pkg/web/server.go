// Package web provides the keep-alive HTTP server. Hosting platforms
// probe it to decide the process is healthy; it must be listening
// before the gateway connection blocks the main goroutine.
package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/ANN7660/hoshimi/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Server represents the web server
type Server struct {
	engine *gin.Engine
}

var server *Server

// Init initializes the global web server
func Init() *Server {
	server = NewServer()
	return server
}

// Get returns the global web server
func Get() *Server {
	return server
}

// NewServer creates a new web server
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine}
	s.engine.Use(s.rateLimitMiddleware())
	s.setupErrorHandlers()

	return s
}

// Engine returns the underlying Gin engine
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// rateLimitMiddleware implements a simple per-IP rate limiter
func (s *Server) rateLimitMiddleware() gin.HandlerFunc {
	type clientInfo struct {
		count   int
		resetAt time.Time
	}
	var mu sync.Mutex
	clients := make(map[string]*clientInfo)

	const window = 60 * time.Second
	const maxRequests = 100

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		info, exists := clients[ip]
		if !exists || now.After(info.resetAt) {
			clients[ip] = &clientInfo{count: 1, resetAt: now.Add(window)}
			mu.Unlock()
			c.Next()
			return
		}
		info.count++
		count := info.count
		mu.Unlock()

		if count > maxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// setupErrorHandlers sets up error handling routes
func (s *Server) setupErrorHandlers() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Not Found",
			"status": 404,
		})
	})

	s.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error":  "Method Not Allowed",
			"status": 405,
		})
	})
}

// Start starts the web server
func (s *Server) Start(port string) error {
	logger.Info("Keep-alive server listening on http://localhost:"+port, "WebServer")
	return s.engine.Run(":" + port)
}

// StartAsync starts the web server in a goroutine
func (s *Server) StartAsync(port string) {
	go func() {
		if err := s.Start(port); err != nil {
			logger.Error("Error starting web server: "+err.Error(), "WebServer")
		}
	}()
}

// GET registers a GET route
func (s *Server) GET(path string, handlers ...gin.HandlerFunc) {
	s.engine.GET(path, handlers...)
}

// Group creates a new router group
func (s *Server) Group(path string, handlers ...gin.HandlerFunc) *gin.RouterGroup {
	return s.engine.Group(path, handlers...)
}
