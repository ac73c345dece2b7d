package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Auth  AuthConfig
	Store StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AuthConfig credencial única de administración. PasswordHash es un hash
// bcrypt; si está vacío, el login queda deshabilitado.
type AuthConfig struct {
	Username     string
	PasswordHash string
}

// StoreConfig rutas de los archivos planos del almacén. Las rutas son
// configuración opaca: el núcleo no las interpreta.
type StoreConfig struct {
	DataDir          string
	CustomersFile    string
	SuppliersFile    string
	ProductsFile     string
	ImportOrdersFile string
	ExportOrdersFile string
	OrderItemsFile   string
}

// Path devuelve la ruta completa de un archivo del almacén.
func (c StoreConfig) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, HTTP_PORT, JWT_SECRET, STORE_DATA_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "trading-pro"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "trading-pro"),
		},
		Auth: AuthConfig{
			Username:     getString(v, "AUTH_USERNAME", "admin"),
			PasswordHash: getString(v, "AUTH_PASSWORD_HASH", ""),
		},
		Store: StoreConfig{
			DataDir:          getString(v, "STORE_DATA_DIR", "./data"),
			CustomersFile:    getString(v, "STORE_CUSTOMERS_FILE", "customers.csv"),
			SuppliersFile:    getString(v, "STORE_SUPPLIERS_FILE", "suppliers.csv"),
			ProductsFile:     getString(v, "STORE_PRODUCTS_FILE", "products.csv"),
			ImportOrdersFile: getString(v, "STORE_IMPORT_ORDERS_FILE", "import_orders.csv"),
			ExportOrdersFile: getString(v, "STORE_EXPORT_ORDERS_FILE", "export_orders.csv"),
			OrderItemsFile:   getString(v, "STORE_ORDER_ITEMS_FILE", "order_items.csv"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
