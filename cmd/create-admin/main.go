package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/yptkiasma/admin-backend/db"
	"github.com/yptkiasma/admin-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// create-admin provisions the SUPER_ADMIN account the dashboard logs in
// with. Running it against an existing email is a no-op.
func main() {
	email := flag.String("email", "admin@yptkiasma.org", "admin email")
	name := flag.String("name", "Admin YPT Kiasma", "admin display name")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *password == "" {
		log.Fatal("password flag is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var existing models.User

	err := db.DB.Where("email = ?", *email).First(&existing).Error

	if err == nil {
		log.Printf("Admin user %s already exists", *email)
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check existing user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)

	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Email:    *email,
		Name:     *name,
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Admin user %s created", user.Email)
}
