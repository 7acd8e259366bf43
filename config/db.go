package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotelops-backend/models"
	"hotelops-backend/utils"

	sqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	pass, _ := u.User.Password()

	cfg := sqldriver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd = pass
	cfg.Net = "tcp"
	cfg.Addr = u.Hostname() + ":" + port
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for k, v := range u.Query() {
		if len(v) > 0 {
			cfg.Params[k] = v[0]
		}
	}

	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	cfg := sqldriver.NewConfig()
	cfg.User = utils.EnvOrDefault("DB_USER", "root")
	cfg.Passwd = utils.EnvOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = utils.EnvOrDefault("DB_HOST", "127.0.0.1") + ":" + utils.EnvOrDefault("DB_PORT", "3306")
	cfg.DBName = utils.EnvOrDefault("DB_NAME", "hotelops_db")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

// SeedDatabase fills empty tables with a demo owner, hotel, and catalog
// so a fresh install has something on every screen.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		log.Println("Database already seeded")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(utils.EnvOrDefault("SEED_OWNER_PASSWORD", "owner123")), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash seed owner password: %v", err)
		return
	}
	owner := models.User{
		Email:    utils.EnvOrDefault("SEED_OWNER_EMAIL", "owner@hotelops.local"),
		Password: string(hash),
	}
	if err := DB.Create(&owner).Error; err != nil {
		log.Printf("warning: failed to create seed owner: %v", err)
		return
	}

	hotel := models.Hotel{
		Name:     "Demo Hotel",
		Address:  "1 Demo Street",
		Services: []string{"Rooms", "Restaurant"},
		OwnerID:  owner.ID,
	}
	if err := DB.Create(&hotel).Error; err != nil {
		log.Printf("warning: failed to create seed hotel: %v", err)
		return
	}

	roomTypes := []models.RoomType{
		{HotelID: hotel.ID, Name: "Standard", BasePrice: 1200, MaxOccupancy: 2, Amenities: []string{"WiFi"}, Available: models.BoolPtr(true), SortOrder: 1},
		{HotelID: hotel.ID, Name: "Superior", BasePrice: 1800, MaxOccupancy: 3, Amenities: []string{"WiFi", "AC"}, Available: models.BoolPtr(true), SortOrder: 2},
		{HotelID: hotel.ID, Name: "Deluxe", BasePrice: 2000, MaxOccupancy: 4, Amenities: []string{"WiFi", "AC", "Minibar"}, Available: models.BoolPtr(true), SortOrder: 3},
	}
	DB.Create(&roomTypes)

	foodItems := []models.FoodItem{
		{HotelID: hotel.ID, Name: "Masala Tea", Price: 20, Category: models.FoodCategoryBeverages, Available: models.BoolPtr(true), IsVegetarian: true, PreparationTime: 5, SortOrder: 1},
		{HotelID: hotel.ID, Name: "Veg Thali", Price: 150, Category: models.FoodCategoryLunch, Available: models.BoolPtr(true), IsVegetarian: true, SpiceLevel: models.SpiceLevelMedium, PreparationTime: 20, SortOrder: 2},
	}
	DB.Create(&foodItems)

	services := []models.ServiceItem{
		{HotelID: hotel.ID, Name: "Laundry", Price: 100, Description: "Per load", Available: models.BoolPtr(true)},
		{HotelID: hotel.ID, Name: "Airport Pickup", Price: 500, Available: models.BoolPtr(true)},
	}
	DB.Create(&services)

	log.Println("Demo hotel seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// Migrate runs AutoMigrate in parent->child order. Split out so tests
// can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.RoomType{},
		&models.FoodItem{},
		&models.ServiceItem{},
		&models.Bill{},
		&models.BillItem{},
		&models.Staff{},
		&models.InventoryItem{},
		&models.CrashReport{},
	)
}
