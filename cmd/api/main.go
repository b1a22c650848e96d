package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/config"
	dbpkg "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/db"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/events"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/middleware"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/routes"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/validators"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	publisher := events.NewRedisPublisher(rdb, cfg.EventsChannel)
	eventsDispatcher := events.NewDispatcher(publisher)

	validators.Register()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, eventsDispatcher, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
