package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds the process-level settings, loaded from the environment.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Rules    Rules
}

// Rules is the auction rule set injected into the engine. Behaviors that
// vary between auctions (auto-increment vs validated amounts, bidder and
// item caps) are explicit configuration rather than constants.
type Rules struct {
	MaxActiveBidders  int  `env:"MAX_ACTIVE_BIDDERS" envDefault:"2"`
	MaxItemsPerBidder int  `env:"MAX_ITEMS_PER_BIDDER" envDefault:"4"`
	AutoIncrement     bool `env:"AUTO_INCREMENT" envDefault:"false"`

	LargeIncrement  int64 `env:"LARGE_INCREMENT" envDefault:"2000000"`
	SmallIncrement  int64 `env:"SMALL_INCREMENT" envDefault:"500000"`
	SilverThreshold int64 `env:"SILVER_THRESHOLD" envDefault:"10000000"`

	ConflictRetries uint          `env:"CONFLICT_RETRIES" envDefault:"3"`
	LockTimeout     time.Duration `env:"LOCK_TIMEOUT" envDefault:"250ms"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// DefaultRules returns the canonical rule set; tests use it directly.
func DefaultRules() Rules {
	return Rules{
		MaxActiveBidders:  2,
		MaxItemsPerBidder: 4,
		AutoIncrement:     false,
		LargeIncrement:    2_000_000,
		SmallIncrement:    500_000,
		SilverThreshold:   10_000_000,
		ConflictRetries:   3,
		LockTimeout:       250 * time.Millisecond,
	}
}
