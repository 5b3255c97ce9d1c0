package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Sridharj9095/amirtham-cooldrinks/configs"
	"github.com/Sridharj9095/amirtham-cooldrinks/middlewares"
	"github.com/Sridharj9095/amirtham-cooldrinks/routes"
)

func main() {
	cfg := configs.LoadConfig()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// DB
	if err := configs.ConnectionDB(cfg.DBSource); err != nil {
		log.WithError(err).Fatal("connect database")
	}
	db := configs.DB()

	// migrate + seed
	if err := configs.SetupDatabase(); err != nil {
		log.WithError(err).Fatal("migrate database")
	}
	if err := configs.SeedCatalog(); err != nil {
		log.WithError(err).Fatal("seed catalog")
	}
	if err := configs.SeedSettings(); err != nil {
		log.WithError(err).Fatal("seed settings")
	}

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded menu images
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, log)

	log.WithField("port", cfg.Port).Info("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
