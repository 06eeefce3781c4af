package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vanesatov/HotelesApi/handlers"
	"github.com/vanesatov/HotelesApi/internal/config"
	"github.com/vanesatov/HotelesApi/internal/database"
	"github.com/vanesatov/HotelesApi/internal/hotels"
	"github.com/vanesatov/HotelesApi/internal/sessions"
	"github.com/vanesatov/HotelesApi/internal/users"
	"github.com/vanesatov/HotelesApi/pkg/logger"
	"github.com/vanesatov/HotelesApi/pkg/metrics"
	"github.com/vanesatov/HotelesApi/pkg/middleware"
	"github.com/vanesatov/HotelesApi/templates"
)

var startTime = time.Now()

func main() {
	// logging can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestMetrics())
	r.SetHTMLTemplate(templates.Parse())

	// Connect to Redis early so sessions and the rate limiter can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when logged in, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Stores: Mongo-backed when configured, in-memory fallback for local runs
	var hotelRepo hotels.Repository
	var userRepo users.Repository
	var mongoClient *mongo.Client
	ctx := context.Background()
	if cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		}
		defer func() { _ = mongoClient.Disconnect(ctx) }()
		db := mongoClient.Database(cfg.MongoDB.Database)
		hotelRepo = hotels.NewMongoRepository(db.Collection("hoteles"))
		userRepo = users.NewMongoRepository(db.Collection("users"))
	} else {
		logger.Warnf("MONGODB_URI not set; using in-memory stores (data is not persisted)")
		hotelRepo = hotels.NewMemoryRepository()
		userRepo = users.NewMemoryRepository()
	}
	security := users.NewService(userRepo)

	// Sessions: prefer Redis (fast, self-expiring), fall back to Mongo
	var sessionsSvc *sessions.Service
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("Using Redis for session storage")
	} else if mongoClient != nil {
		col := mongoClient.Database(cfg.MongoDB.Database).Collection("sessions")
		sessionsSvc = sessions.NewService(sessions.NewMongoRepository(col))
		logger.Infof("Using MongoDB for session storage")
	} else {
		logger.Warnf("no session store available; web login is disabled")
	}

	r.Use(middleware.SessionMiddleware(sessionsSvc, cfg.Session.CookieName))

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: 200 only when the critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["hotels"] = hotelRepo != nil
		deps["users"] = userRepo != nil
		deps["sessions"] = sessionsSvc != nil
		if sessionsSvc == nil {
			ready = false
		}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Surfaces: JSON API, HTML web UI, login
	handlers.NewAPIHandler(hotelRepo, security).Register(r.Group("/api"))
	handlers.NewWebHandler(hotelRepo).Register(r.Group("/web"))
	if sessionsSvc != nil {
		handlers.NewLoginHandler(security, sessionsSvc, cfg.Session.CookieName, cfg.Session.TTL).Register(r.Group("/login"))
	} else {
		logger.Warnf("login handlers not registered because no session store is available")
	}
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting hoteles service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
