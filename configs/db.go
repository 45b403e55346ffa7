package configs

import (
	"log"

	"github.com/sundap1986/Vehicle-Repair-Order-System/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// SetupDatabase ensures the four tables exist. Safe to re-run on every start.
func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.RepairOrder{},
		&entity.SparePart{},
		&entity.LaborDetail{},
		&entity.VehicleCheck{},
	)
	if err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
