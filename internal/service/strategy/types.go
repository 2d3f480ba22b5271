package strategy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/indicator"
)

type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
	Hold Action = "HOLD"
)

// Signal is a strategy's decision for one symbol at one bar. It is never
// mutated after creation.
type Signal struct {
	Action          Action
	Confidence      float64 // 0-100
	StrategyName    string
	StopLoss        *decimal.Decimal // nil when the strategy sets none
	TakeProfit      *decimal.Decimal
	TDISignal       string // empty when not contributed
	BollingerSignal string
	Symbol          exchange.Symbol
	Timestamp       time.Time // open time of the bar that produced the signal
}

// Engine combines a series and both indicator outputs into at most one
// signal. Implementations must be pure and deterministic.
type Engine interface {
	Generate(klines []exchange.Kline, tdi indicator.TDIResult, boll indicator.BollingerResult) *Signal
	Name() string
}
