package config

import (
	"fmt"
	"os"

	"github.com/nikolayk812/testshop/internal/discount"
	"github.com/nikolayk812/testshop/internal/domain"
	"github.com/nikolayk812/testshop/internal/port"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

const (
	defaultCurrency = "USD"
	defaultLogLevel = "info"
	defaultDiscount = "none"
)

// Config describes one order: the buyer, the cart contents and how to price it.
type Config struct {
	Currency string          `toml:"currency"`
	Log      LogConfig       `toml:"log"`
	User     UserConfig      `toml:"user"`
	Discount DiscountConfig  `toml:"discount"`
	Products []ProductConfig `toml:"products"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type UserConfig struct {
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
	BirthDate string `toml:"birth_date"`
}

type DiscountConfig struct {
	Kind  string  `toml:"kind"`
	Value float64 `toml:"value"`
}

type ProductConfig struct {
	ID       int     `toml:"id"`
	Name     string  `toml:"name"`
	Price    float64 `toml:"price"`
	Quantity float64 `toml:"quantity"`
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("toml.Unmarshal: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("cfg.Validate: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Currency == "" {
		c.Currency = defaultCurrency
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Discount.Kind == "" {
		c.Discount.Kind = defaultDiscount
	}
}

func (c Config) Validate() error {
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level[%s] is not valid: %w", c.Log.Level, err)
	}

	if c.User.FirstName == "" {
		return fmt.Errorf("user first_name is empty")
	}

	if _, err := c.DiscountUtility(); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(c.Products))
	for _, p := range c.Products {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("product[%d] is duplicated", p.ID)
		}
		seen[p.ID] = struct{}{}

		if err := p.toDomain().Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (c Config) DiscountUtility() (port.DiscountUtility, error) {
	utility, err := discount.New(c.Discount.Kind, c.Discount.Value)
	if err != nil {
		return nil, fmt.Errorf("discount.New: %w", err)
	}

	return utility, nil
}

func (c Config) CurrencyUnit() currency.Unit {
	return currency.MustParseISO(c.Currency)
}

func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Account builds the user and fills the cart in file order.
func (c Config) Account() *domain.UserAccount {
	user := domain.NewUserAccount(c.User.FirstName, c.User.LastName, c.User.BirthDate)

	for _, p := range c.Products {
		user.ShoppingCart.AddProductToCart(p.toDomain())
	}

	return user
}

func (p ProductConfig) toDomain() domain.Product {
	return domain.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}
