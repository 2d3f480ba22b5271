package ioc

import (
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/kofeld/signalbot/internal/service/bot"
	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/indicator"
	"github.com/kofeld/signalbot/internal/service/strategy"
)

func InitBotConfig() bot.Config {
	type Config struct {
		Symbols          []string      `mapstructure:"symbols"`
		Timeframe        string        `mapstructure:"timeframe"`
		Lookback         int           `mapstructure:"lookback"`
		MinDataPoints    int           `mapstructure:"min_data_points"`
		AnalysisInterval time.Duration `mapstructure:"analysis_interval"`
		SymbolDelay      time.Duration `mapstructure:"symbol_delay"`
	}

	cfg := Config{
		Timeframe:        "5m",
		Lookback:         100,
		MinDataPoints:    50,
		AnalysisInterval: 5 * time.Minute,
		SymbolDelay:      time.Second,
	}
	if err := viper.UnmarshalKey("trading", &cfg); err != nil {
		panic(err)
	}
	if len(cfg.Symbols) == 0 {
		panic("no trading symbols configured")
	}

	symbols := lo.Map(cfg.Symbols, func(s string, _ int) exchange.Symbol {
		symbol, err := exchange.ParseSymbol(s)
		if err != nil {
			panic(err)
		}
		return symbol
	})

	return bot.Config{
		Symbols:          symbols,
		Timeframe:        exchange.Interval(cfg.Timeframe),
		Lookback:         cfg.Lookback,
		MinDataPoints:    cfg.MinDataPoints,
		AnalysisInterval: cfg.AnalysisInterval,
		SymbolDelay:      cfg.SymbolDelay,
	}
}

func InitTDIConfig() indicator.TDIConfig {
	var cfg indicator.TDIConfig
	if err := viper.UnmarshalKey("indicators.tdi", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitBollingerConfig() indicator.BollingerConfig {
	var cfg indicator.BollingerConfig
	if err := viper.UnmarshalKey("indicators.bollinger", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func InitStrategyConfig() strategy.ConsolidatedConfig {
	var cfg strategy.ConsolidatedConfig
	if err := viper.UnmarshalKey("strategy", &cfg); err != nil {
		panic(err)
	}
	return cfg
}
