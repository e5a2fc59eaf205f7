package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/dreamcraft-eng/dreamcraft-backend/api"
	"github.com/dreamcraft-eng/dreamcraft-backend/auth"
	"github.com/dreamcraft-eng/dreamcraft-backend/config"
	"github.com/dreamcraft-eng/dreamcraft-backend/database"
	"github.com/dreamcraft-eng/dreamcraft-backend/models"
	"github.com/dreamcraft-eng/dreamcraft-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.FromEnv(config.New())

	if cfg.JWTSecret == "" {
		fmt.Println("JWT_SECRET must be set. Exiting...")
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	fmt.Printf("DB_TYPE: %s\n", cfg.DBType)
	switch cfg.DBType {
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		fmt.Println("Unsupported DB_TYPE. Exiting...")
		os.Exit(1)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Route reads to a replica when one is configured
	if cfg.ReplicaDSN != "" && cfg.DBType == "postgres" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.ReplicaDSN)},
		}))
		if err != nil {
			fmt.Printf("Error configuring read replica: %v\n", err)
			os.Exit(1)
		}
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.BlogCategory{},
		&models.BlogTag{},
		&models.Blog{},
		&models.Project{},
		&models.ProjectImage{},
	); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := seedAdmin(currentDB, cfg); err != nil {
		fmt.Printf("Error seeding admin account: %v\n", err)
		os.Exit(1)
	}

	store, err := newUploadStore(cfg)
	if err != nil {
		fmt.Printf("Error initializing upload store: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(cfg, currentDB, store)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// newUploadStore picks the upload backend: local disk by default, S3 when
// UPLOAD_BACKEND=s3.
func newUploadStore(cfg config.Config) (storage.Store, error) {
	switch cfg.UploadBackend {
	case "s3":
		return storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3BaseURL)
	default:
		return storage.NewDiskStore(cfg.UploadDir, cfg.UploadPath), nil
	}
}

// seedAdmin creates the admin role, and an initial admin account when
// SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are configured. Idempotent.
func seedAdmin(db database.Database, cfg config.Config) error {
	role, err := db.RoleRepo().FindByName("admin")
	if err != nil {
		return err
	}
	if role == nil {
		role = &models.Role{Name: "admin"}
		if err := db.RoleRepo().Add(role); err != nil {
			return err
		}
	}

	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	existing, err := db.UserRepo().FindByEmail(cfg.SeedAdminEmail)
	if err != nil || existing != nil {
		return err
	}

	hashed, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:           "Administrator",
		Email:          cfg.SeedAdminEmail,
		HashedPassword: hashed,
		IsActive:       true,
		RoleID:         role.ID,
	}
	return db.UserRepo().Add(&admin)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
