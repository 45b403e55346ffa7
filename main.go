package main

import (
	"fmt"
	"log"

	"github.com/sundap1986/Vehicle-Repair-Order-System/configs"
	"github.com/sundap1986/Vehicle-Repair-Order-System/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
