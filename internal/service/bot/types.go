package bot

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/indicator"
	"github.com/kofeld/signalbot/internal/service/strategy"
)

// DataStore persists kline series and signals behind a scoped lifecycle.
// Store calls are idempotent for repeated identical timestamps.
type DataStore interface {
	Init(ctx context.Context) error
	Close() error
	StoreSeries(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval, klines []exchange.Kline) error
	StoreSignal(ctx context.Context, symbol exchange.Symbol, sig strategy.Signal, ts time.Time) error
}

// TDIEngine and BollingerEngine are pure, deterministic functions over a
// kline series.
type TDIEngine interface {
	Calculate(klines []exchange.Kline) (indicator.TDIResult, error)
}

type BollingerEngine interface {
	Calculate(klines []exchange.Kline) (indicator.BollingerResult, error)
}

// SymbolProcessor runs one symbol through the full analysis pipeline.
// Implementations never propagate collaborator failures to the caller.
type SymbolProcessor interface {
	Process(ctx context.Context, symbol exchange.Symbol)
}

// SignalDispatcher hands a produced signal to persistence and notification.
type SignalDispatcher interface {
	Dispatch(ctx context.Context, symbol exchange.Symbol, sig strategy.Signal, price decimal.Decimal, ts time.Time)
}

// Config is the orchestration-level configuration.
type Config struct {
	Symbols          []exchange.Symbol
	Timeframe        exchange.Interval
	Lookback         int           // bars per fetch
	MinDataPoints    int           // below this a series is skipped
	AnalysisInterval time.Duration // target cycle cadence
	SymbolDelay      time.Duration // courtesy pause between symbols
}
