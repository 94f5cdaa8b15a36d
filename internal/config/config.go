package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Product is a single page to watch. Selector is a marker string whose
// presence in the page counts as an in-stock signal, PriceSelector is an
// optional CSS selector for the displayed price.
type Product struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	Selector      string `json:"selector"`
	PriceSelector string `json:"price_selector,omitempty"`
}

type Telegram struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `envconfig:"TELEGRAM_CHAT_ID"`
}

func (t Telegram) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

type Email struct {
	From     string `envconfig:"EMAIL_FROM"`
	Password string `envconfig:"EMAIL_PASSWORD"`
	To       string `envconfig:"EMAIL_TO"`
	Server   string `envconfig:"SMTP_SERVER" default:"smtp.gmail.com"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
}

func (e Email) Configured() bool {
	return e.From != "" && e.Password != "" && e.To != ""
}

type Config struct {
	Telegram Telegram
	Email    Email

	StateFile    string        `envconfig:"STATE_FILE" default:"stock_state.json"`
	LogFile      string        `envconfig:"LOG_FILE" default:"stock_monitor.log"`
	ProductsFile string        `envconfig:"PRODUCTS_FILE"`
	CheckDelay   time.Duration `envconfig:"CHECK_DELAY" default:"2s"`
	Proxies      []string      `envconfig:"PROXIES"`

	Products []Product `ignored:"true"`
}

// defaultProducts is used when no PRODUCTS_FILE is configured.
var defaultProducts = []Product{
	{
		Name:          "Amul Butter 500g",
		URL:           "https://www.amul.com/products/butter-500g",
		Selector:      "add-to-cart",
		PriceSelector: ".price",
	},
	{
		Name:          "Amul Milk Powder",
		URL:           "https://www.amul.com/products/milk-powder",
		Selector:      "add-to-cart",
		PriceSelector: ".price",
	},
}

// Load reads configuration from the environment, with a .env file as an
// optional local override source.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	products, err := LoadProducts(cfg.ProductsFile)
	if err != nil {
		return Config{}, err
	}
	cfg.Products = products

	return cfg, nil
}

// LoadProducts reads the tracked product list from a JSON file, falling
// back to the built-in list when no path is given.
func LoadProducts(path string) ([]Product, error) {
	if path == "" {
		return defaultProducts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse products file %s: %w", path, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("products file %s contains no products", path)
	}
	for i, p := range products {
		if p.Name == "" || p.URL == "" {
			return nil, fmt.Errorf("products file %s: entry %d is missing a name or url", path, i)
		}
	}
	return products, nil
}
