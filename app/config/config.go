package config

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB         *sql.DB
	SchoolZone *time.Location
	ReportsDir string
	Port       string
}

var AppConfig *Config

// LoadEnv reads the .env file if present. Missing files are fine; real
// deployments set variables through the environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=attendance sslmode=disable")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	zoneName := getEnv("SCHOOL_TIMEZONE", "Asia/Qatar")
	zone, err := time.LoadLocation(zoneName)
	if err != nil {
		log.Printf("Warning: failed to load %s location, falling back to UTC+3: %v", zoneName, err)
		zone = time.FixedZone("AST", 3*60*60)
	}

	AppConfig = &Config{
		DB:         db,
		SchoolZone: zone,
		ReportsDir: getEnv("REPORTS_DIR", "./reports"),
		Port:       getEnv("PORT", "8080"),
	}
	log.Println("Database connected successfully")
	log.Printf("School time zone set to: %s", zone.String())
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// SchoolLocation returns the configured school time zone. All date and
// time-of-day decisions go through this zone, never the host's local zone.
func SchoolLocation() *time.Location {
	return AppConfig.SchoolZone
}

// SchoolNow returns the current time in the school time zone.
func SchoolNow() time.Time {
	return time.Now().In(SchoolLocation())
}

// SchoolToday returns the current date in the school time zone, truncated
// to midnight.
func SchoolToday() time.Time {
	now := SchoolNow()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
