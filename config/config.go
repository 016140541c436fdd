package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the full runtime configuration, read from the environment
// (optionally via a .env file). Every value has a development default;
// the super-admin credential should be overridden in any real deploy.
type Config struct {
	Port      string
	JWTSecret []byte

	DataDir   string
	UploadDir string
	LogoDir   string

	SuperAdminUser string
	SuperAdminPass string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment")
	}

	dataDir := getEnv("DATA_DIR", "data")
	staticDir := getEnv("STATIC_DIR", "static")

	return Config{
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      []byte(getEnv("JWT_SECRET", "quickbite_dev_secret")),
		DataDir:        dataDir,
		UploadDir:      getEnv("UPLOAD_DIR", filepath.Join(staticDir, "uploads")),
		LogoDir:        getEnv("LOGO_DIR", filepath.Join(staticDir, "logos")),
		SuperAdminUser: getEnv("SUPERADMIN_USERNAME", "superadmin"),
		SuperAdminPass: getEnv("SUPERADMIN_PASSWORD", "superadmin123"),
	}
}

// MenuFile and friends are the document files under the data directory.
func (c Config) MenuFile() string   { return filepath.Join(c.DataDir, "menu_admin.json") }
func (c Config) OrdersFile() string { return filepath.Join(c.DataDir, "orders.json") }
func (c Config) AdminsFile() string { return filepath.Join(c.DataDir, "admins.json") }
func (c Config) UsersFile() string  { return filepath.Join(c.DataDir, "users.json") }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
