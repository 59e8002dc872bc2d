package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Simplici0/adlots/internal/assumptions"
	"github.com/Simplici0/adlots/internal/domain"
	"github.com/Simplici0/adlots/internal/pricing"
)

const (
	envPrefix     = "ADLOTS"
	defaultDBPath = "./dev.db"
	defaultPort   = "8080"
)

// Config holds application configuration sourced from an optional YAML file
// and ADLOTS_* environment variables.
type Config struct {
	App struct {
		Env            string
		Port           string
		DBPath         string `mapstructure:"db_path"`
		MigrateOnStart bool   `mapstructure:"migrate_on_start"`
		Seed           bool
	} `mapstructure:"app"`

	Business struct {
		LotsPerYear         float64 `mapstructure:"lots_per_year"`
		BreakEvenThreshold  float64 `mapstructure:"break_even_threshold"`
		ReferenceLotRevenue float64 `mapstructure:"reference_lot_revenue"`
		ReferenceUnitCount  float64 `mapstructure:"reference_unit_count"`
		SpaceSlots          int     `mapstructure:"space_slots"`
		StationSlots        int     `mapstructure:"station_slots"`
		NoGoDays            int     `mapstructure:"no_go_days"`
		WarningDays         int     `mapstructure:"warning_days"`
		CurrentLotCode      string  `mapstructure:"current_lot_code"`
	} `mapstructure:"business"`

	Prices struct {
		Standard float64
		Plus     float64
		Premium  float64
		Station  float64
	} `mapstructure:"prices"`
}

// Load reads path (when not empty) and the environment and returns a
// populated Config. Variables from a local .env file are applied first
// without overriding the real environment.
func Load(path string) (Config, error) {
	// Best-effort: production injects the real environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Assumptions().Validate(); err != nil {
		return Config{}, fmt.Errorf("business settings: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	def := assumptions.Default()

	v.SetDefault("app.env", "dev")
	v.SetDefault("app.port", defaultPort)
	v.SetDefault("app.db_path", defaultDBPath)
	v.SetDefault("app.migrate_on_start", true)
	v.SetDefault("app.seed", false)

	v.SetDefault("business.lots_per_year", def.LotsPerYear)
	v.SetDefault("business.break_even_threshold", def.BreakEvenThreshold)
	v.SetDefault("business.reference_lot_revenue", def.ReferenceLotRevenue)
	v.SetDefault("business.reference_unit_count", def.ReferenceUnitCount)
	v.SetDefault("business.space_slots", def.SpaceSlots)
	v.SetDefault("business.station_slots", def.StationSlots)
	v.SetDefault("business.no_go_days", def.NoGoDays)
	v.SetDefault("business.warning_days", def.WarningDays)
	v.SetDefault("business.current_lot_code", "")

	v.SetDefault("prices.standard", pricing.DefaultStandardPrice)
	v.SetDefault("prices.plus", pricing.DefaultPlusPrice)
	v.SetDefault("prices.premium", pricing.DefaultPremiumPrice)
	v.SetDefault("prices.station", pricing.DefaultStationPrice)
}

func (c Config) IsDev() bool {
	return c.App.Env == "dev"
}

// Assumptions converts the business and prices sections for the engines.
func (c Config) Assumptions() assumptions.Assumptions {
	return assumptions.Assumptions{
		LotsPerYear:         c.Business.LotsPerYear,
		BreakEvenThreshold:  c.Business.BreakEvenThreshold,
		ReferenceLotRevenue: c.Business.ReferenceLotRevenue,
		ReferenceUnitCount:  c.Business.ReferenceUnitCount,
		SpaceSlots:          c.Business.SpaceSlots,
		StationSlots:        c.Business.StationSlots,
		NoGoDays:            c.Business.NoGoDays,
		WarningDays:         c.Business.WarningDays,
		Prices: pricing.PriceList{
			Spaces: map[domain.UnitType]float64{
				domain.UnitStandard: c.Prices.Standard,
				domain.UnitPlus:     c.Prices.Plus,
				domain.UnitPremium:  c.Prices.Premium,
			},
			Station: c.Prices.Station,
		},
	}
}

// Warnings lists optional settings that are missing.
func (c Config) Warnings() []string {
	var out []string
	if c.Business.CurrentLotCode == "" {
		out = append(out, "business.current_lot_code is not set; the dashboard falls back to the upcoming lot")
	}
	if !c.IsDev() && c.App.Seed {
		out = append(out, "app.seed is enabled outside dev")
	}
	return out
}
