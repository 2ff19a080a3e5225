package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DataPath  string
	OutputDir string
	ChartsDir string
	Renderers []string
	TopWords  int
}

var (
	config *Config
	once   sync.Once
)

// AllRenderers lists renderer names in the order they run for a group.
var AllRenderers = []string{"bar", "scatter", "combined", "map", "dashboard"}

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("[config] no .env file found, using process environment")
		}
		config = Load()
	})
	return config
}

// Load builds a Config from the current environment.
func Load() *Config {
	return &Config{
		DataPath:  getEnv("DATA_PATH", "data/airbnb.csv"),
		OutputDir: getEnv("OUTPUT_DIR", "output"),
		ChartsDir: getEnv("CHARTS_DIR", "output/charts"),
		Renderers: getEnvList("RENDERERS", AllRenderers),
		TopWords:  getEnvInt("TOP_WORDS", 15),
	}
}

// Enabled reports whether the named renderer should run.
func (c *Config) Enabled(renderer string) bool {
	for _, r := range c.Renderers {
		if r == renderer {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
