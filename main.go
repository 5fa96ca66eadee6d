package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/configs"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/middlewares"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/repository"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	store := repository.NewKVRepository(configs.DB())

	// catalog seed
	menu, err := configs.LoadMenu()
	if err != nil {
		logrus.Fatalf("load menu catalog failed: %v", err)
	}
	offers, err := configs.LoadOffers()
	if err != nil {
		logrus.Fatalf("load offer catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, store, menu, offers, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
