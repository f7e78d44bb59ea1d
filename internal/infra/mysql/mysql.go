package mysql

import (
	"fmt"
	"os"

	"commerce-api/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func NewMySQLFromEnv() (*gorm.DB, error) {
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASSWORD")
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	dbname := os.Getenv("MYSQL_DATABASE")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, pass, host, port, dbname)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Product{},
		&domain.Order{},
		&domain.Payment{},
		&domain.OrderHistory{},
	)
}

// SeedProducts inserts a demo catalog on an empty products table so a fresh
// instance is usable without a separate loader.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []domain.Product{
		{Name: "Wireless Headphones", BasePrice: 159000, DiscountPrice: 129000, AvailableStock: 50, Available: true},
		{Name: "Mechanical Keyboard", BasePrice: 99000, DiscountPrice: 89000, AvailableStock: 30, Available: true},
		{Name: "Discontinued Webcam", BasePrice: 45000, DiscountPrice: 39000, AvailableStock: 10, Available: false},
	}
	return db.Create(&products).Error
}
