package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación. La conexión a Odoo se lee
// de config.json (y se reescribe cuando el operador la cambia); el resto viene
// de variables de entorno con valores por defecto.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Odoo   OdooConfig
	Print  PrintConfig
	Limits LimitsConfig

	mu   sync.RWMutex
	path string // ruta del config.json
}

// AppConfig configuración general.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	UploadDir string // directorio para archivos subidos y etiquetas temporales
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

// OdooConfig credenciales de conexión a Odoo (claves de config.json).
type OdooConfig struct {
	URL      string `json:"url" mapstructure:"url"`
	DB       string `json:"db" mapstructure:"db"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
}

// PrintConfig configuración del spooler de impresión CUPS/IPP.
type PrintConfig struct {
	SpoolerHost    string        // vacío = localhost
	SpoolerPort    int           // 631 por defecto
	DefaultPrinter string        // vacío = la primera disponible
	CleanupDelay   time.Duration // espera antes de borrar la etiqueta temporal
}

// LimitsConfig límites de lotes y truncamiento hacia Odoo.
type LimitsConfig struct {
	MoveBatchSize   int // líneas stock.move por llamada create
	MaxQtyPerLine   int // tope de cantidad por línea
	MaxDistinct     int // tope de códigos distintos por transferencia
	ChunkSize       int // códigos crudos por transferencia en modo troceado
	LookupBatchSize int // códigos por lote en búsquedas OR para reportes
}

// Load lee la configuración: config.json para la conexión Odoo (valores por
// defecto si no existe) y variables de entorno para lo demás.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "odoo-scanner"),
			UploadDir: getString(v, "UPLOAD_DIR", "uploads"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5010),
		},
		Print: PrintConfig{
			SpoolerHost:    getString(v, "CUPS_HOST", ""),
			SpoolerPort:    getInt(v, "CUPS_PORT", 631),
			DefaultPrinter: getString(v, "DEFAULT_PRINTER", ""),
			CleanupDelay:   time.Duration(getInt(v, "LABEL_CLEANUP_SECONDS", 10)) * time.Second,
		},
		Limits: LimitsConfig{
			MoveBatchSize:   getInt(v, "MOVE_BATCH_SIZE", 5),
			MaxQtyPerLine:   getInt(v, "MAX_QTY_PER_LINE", 100),
			MaxDistinct:     getInt(v, "MAX_DISTINCT_BARCODES", 20),
			ChunkSize:       getInt(v, "UPLOAD_CHUNK_SIZE", 10),
			LookupBatchSize: getInt(v, "LOOKUP_BATCH_SIZE", 20),
		},
		path: path,
	}

	odoo, err := readOdooFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Odoo = odoo

	return cfg, nil
}

// readOdooFile lee config.json; si no existe devuelve los valores por defecto.
func readOdooFile(path string) (OdooConfig, error) {
	odoo := OdooConfig{
		URL:      "http://localhost:8069",
		DB:       "odoo",
		Username: "admin",
		Password: "admin",
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return odoo, nil
		}
		// ReadInConfig con SetConfigFile devuelve *fs.PathError si el archivo
		// no existe; también se trata como "usar valores por defecto".
		if strings.Contains(err.Error(), "no such file") {
			return odoo, nil
		}
		return odoo, fmt.Errorf("config: leer %s: %w", path, err)
	}
	if err := v.Unmarshal(&odoo); err != nil {
		return odoo, fmt.Errorf("config: interpretar %s: %w", path, err)
	}
	return odoo, nil
}

// OdooSnapshot devuelve una copia de la configuración Odoo vigente.
func (c *Config) OdooSnapshot() OdooConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Odoo
}

// Reconfigure reemplaza la conexión Odoo y reescribe config.json.
// Último escritor gana; la escritura es de archivo completo.
func (c *Config) Reconfigure(odoo OdooConfig) error {
	c.mu.Lock()
	c.Odoo = odoo
	path := c.path
	c.mu.Unlock()

	v := viper.New()
	v.SetConfigType("json")
	v.Set("url", odoo.URL)
	v.Set("db", odoo.DB)
	v.Set("username", odoo.Username)
	v.Set("password", odoo.Password)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config: escribir %s: %w", path, err)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
