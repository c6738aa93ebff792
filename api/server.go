package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/aidconnect/aid-connect-api/ai"
	"github.com/aidconnect/aid-connect-api/geo"
	"github.com/aidconnect/aid-connect-api/match"
	"github.com/aidconnect/aid-connect-api/metrics"
	"github.com/aidconnect/aid-connect-api/ratelimit"
	"github.com/aidconnect/aid-connect-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// Matching engine
	matcher match.Matcher

	// External services, nil when not configured
	classifier ai.Classifier
	moderator  ai.Moderator
	resolver   geo.AddressResolver

	limiter ratelimit.RateLimiter

	// Background task queue
	background TaskEnqueuer

	// JWT signing secret and token lifetime
	jwtSecret []byte
	jwtExpire time.Duration

	passwordCost int
}

// NewServer new instance of server
func NewServer(
	mongoStore store.MongoStore,
	matcher match.Matcher,
	classifier ai.Classifier,
	moderator ai.Moderator,
	resolver geo.AddressResolver,
	limiter ratelimit.RateLimiter,
	background TaskEnqueuer,
	jwtSecret string,
	jwtExpire time.Duration) *Server {
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}

	return &Server{
		mongoStore:   mongoStore,
		matcher:      matcher,
		classifier:   classifier,
		moderator:    moderator,
		resolver:     resolver,
		limiter:      limiter,
		background:   background,
		jwtSecret:    []byte(jwtSecret),
		jwtExpire:    jwtExpire,
		passwordCost: bcrypt.DefaultCost,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := viper.GetStringSlice("server.cors_origins")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
		// wildcard origins cannot carry credentials
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = origins
	}

	return config
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(corsConfig()))

	apiRoute := r.Group("/api")
	apiRoute.Use(ginrus("API"))
	{
		apiRoute.GET("/", s.root)
		apiRoute.GET("/health", s.health)
	}

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	// api route other than `/auth/register`, `/auth/login` and the health
	// checks will apply the following middleware
	authRoute.Use(s.authMiddleware(), s.recognizeUserMiddleware())
	{
		authRoute.GET("/me", s.me)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(s.authMiddleware(), s.recognizeUserMiddleware())
	{
		requestRoute.POST("", s.createHelpRequest)
		requestRoute.GET("", s.listHelpRequests)
		requestRoute.GET("/:requestID", s.getHelpRequest)
		requestRoute.POST("/:requestID/matches", s.refreshMatches)
	}

	offerRoute := apiRoute.Group("/offers")
	offerRoute.Use(s.authMiddleware(), s.recognizeUserMiddleware())
	{
		offerRoute.POST("", s.createOffer)
		offerRoute.GET("", s.listOffers)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		adminRoute.POST("/expire-requests", s.adminExpireRequests)
		adminRoute.POST("/requests/:requestID/refresh", s.adminRefreshMatches)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(ginrus("Metric"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", gin.WrapH(metrics.Handler()))
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Aid-Connect API - Empowering Communities",
		"version": viper.GetString("server.version"),
	})
}

// health reports the state of the database and of the AI services
func (s *Server) health(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	database := "connected"
	if err := s.mongoStore.Ping(c.Request.Context()); err != nil {
		log.WithError(err).Error("ping database")
		status, code = "unhealthy", http.StatusServiceUnavailable
		database = "disconnected"
	}

	aiStatus := "available"
	if s.classifier == nil || s.moderator == nil {
		aiStatus = "unavailable"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"services": gin.H{
			"database": database,
			"ai":       aiStatus,
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
