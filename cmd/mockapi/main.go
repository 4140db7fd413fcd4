package main

import (
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"

	"github.com/flexipack-labs/order-portal/database"
	"github.com/flexipack-labs/order-portal/mockapi"
	"github.com/flexipack-labs/order-portal/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := database.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to open database: %v", err)
	}
	if err := mockapi.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("failed to migrate schema: %v", err)
	}

	var count int64
	if err := db.Model(&mockapi.OrderRecord{}).Count(&count).Error; err != nil {
		utils.ErrorLogger.Fatalf("failed to inspect database: %v", err)
	}
	if count == 0 {
		rng := rand.New(rand.NewSource(42))
		if err := mockapi.SeedOrders(db, 50, rng); err != nil {
			utils.ErrorLogger.Fatalf("failed to seed orders: %v", err)
		}
		if err := mockapi.SeedUser(db, "admin", "password"); err != nil {
			utils.ErrorLogger.Fatalf("failed to seed user: %v", err)
		}
		utils.InfoLogger.Println("seeded 50 orders and default user admin/password")
	}

	port := os.Getenv("MOCKAPI_PORT")
	if port == "" {
		port = "9090"
	}

	r := mockapi.NewRouter(db)
	utils.InfoLogger.Printf("mock order api listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
