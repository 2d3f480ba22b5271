package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/notifier"
	"github.com/kofeld/signalbot/internal/service/strategy"
)

var _ SignalDispatcher = (*Dispatcher)(nil)

// Dispatcher persists a signal and sends the alert. The two actions are
// independent best-effort: a persistence failure never blocks the
// notification and vice versa.
type Dispatcher struct {
	store    DataStore
	notifier notifier.Notifier
}

func NewDispatcher(store DataStore, notifier notifier.Notifier) *Dispatcher {
	return &Dispatcher{
		store:    store,
		notifier: notifier,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, symbol exchange.Symbol, sig strategy.Signal, price decimal.Decimal, ts time.Time) {
	slog.Info("signal generated",
		"symbol", symbol.ToSlashString(), "action", sig.Action, "price", price, "confidence", sig.Confidence)

	if err := d.store.StoreSignal(ctx, symbol, sig, ts); err != nil {
		slog.Error("failed to store signal", "symbol", symbol.ToSlashString(), "error", err)
	}

	if err := d.notifier.Send(ctx, FormatSignalMessage(symbol, sig, price, ts)); err != nil {
		slog.Error("failed to send signal notification", "symbol", symbol.ToSlashString(), "error", err)
	}
}

// FormatSignalMessage renders the alert text. Pure: identical input yields
// byte-identical output.
func FormatSignalMessage(symbol exchange.Symbol, sig strategy.Signal, price decimal.Decimal, ts time.Time) string {
	emoji := "🟡"
	switch sig.Action {
	case strategy.Buy:
		emoji = "🟢"
	case strategy.Sell:
		emoji = "🔴"
	}

	return fmt.Sprintf(`%s **%s SIGNAL**
📊 Symbol: %s
💰 Price: $%.4f
⏰ Time: %s
🎯 Confidence: %.2f%%
📈 Strategy: %s

**Indicator Analysis:**
• TDI: %s
• Bollinger: %s

**Risk Management:**
• Stop Loss: %s
• Take Profit: %s`,
		emoji, sig.Action,
		symbol.ToSlashString(),
		price.InexactFloat64(),
		ts.Format("2006-01-02 15:04:05"),
		sig.Confidence,
		sig.StrategyName,
		orNA(sig.TDISignal),
		orNA(sig.BollingerSignal),
		priceOrNA(sig.StopLoss),
		priceOrNA(sig.TakeProfit),
	)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func priceOrNA(d *decimal.Decimal) string {
	if d == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.4f", d.InexactFloat64())
}
