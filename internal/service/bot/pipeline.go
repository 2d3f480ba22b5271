package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/notifier"
	"github.com/kofeld/signalbot/internal/service/strategy"
)

var _ SymbolProcessor = (*Pipeline)(nil)

// Pipeline runs one symbol through fetch, persist, indicators, strategy
// and dispatch. Every collaborator failure is absorbed at this boundary:
// Process always returns normally so one symbol can never abort a cycle.
type Pipeline struct {
	market     exchange.MarketService
	store      DataStore
	tdi        TDIEngine
	bollinger  BollingerEngine
	strategy   strategy.Engine
	dispatcher SignalDispatcher
	notifier   notifier.Notifier

	timeframe     exchange.Interval
	lookback      int
	minDataPoints int
}

func NewPipeline(
	market exchange.MarketService,
	store DataStore,
	tdi TDIEngine,
	bollinger BollingerEngine,
	strat strategy.Engine,
	dispatcher SignalDispatcher,
	notif notifier.Notifier,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		market:        market,
		store:         store,
		tdi:           tdi,
		bollinger:     bollinger,
		strategy:      strat,
		dispatcher:    dispatcher,
		notifier:      notif,
		timeframe:     cfg.Timeframe,
		lookback:      cfg.Lookback,
		minDataPoints: cfg.MinDataPoints,
	}
}

func (p *Pipeline) Process(ctx context.Context, symbol exchange.Symbol) {
	if err := p.process(ctx, symbol); err != nil {
		slog.Error("failed to process symbol", "symbol", symbol.ToSlashString(), "error", err)
		// best-effort alert, failure only logged
		alert := fmt.Sprintf("❌ Error processing %s: %s", symbol.ToSlashString(), err)
		if nerr := p.notifier.Send(ctx, alert); nerr != nil {
			slog.Error("failed to send error alert", "symbol", symbol.ToSlashString(), "error", nerr)
		}
	}
}

func (p *Pipeline) process(ctx context.Context, symbol exchange.Symbol) error {
	klines, err := p.market.GetKlines(ctx, exchange.GetKlinesReq{
		Symbol:   symbol,
		Interval: p.timeframe,
		Lookback: p.lookback,
	})
	if err != nil {
		if errors.Is(err, exchange.ErrNoData) {
			slog.Info("no kline data", "symbol", symbol.ToSlashString())
			return nil
		}
		return fmt.Errorf("fetch klines: %w", err)
	}
	if len(klines) == 0 {
		slog.Info("no kline data", "symbol", symbol.ToSlashString())
		return nil
	}
	if len(klines) < p.minDataPoints {
		slog.Warn("insufficient data", "symbol", symbol.ToSlashString(),
			"klines", len(klines), "min", p.minDataPoints)
		return nil
	}
	if err = exchange.ValidateSeries(klines); err != nil {
		return fmt.Errorf("validate series: %w", err)
	}

	if err = p.store.StoreSeries(ctx, symbol, p.timeframe, klines); err != nil {
		return fmt.Errorf("store series: %w", err)
	}

	tdiRes, err := p.tdi.Calculate(klines)
	if err != nil {
		return fmt.Errorf("calculate tdi: %w", err)
	}
	bollRes, err := p.bollinger.Calculate(klines)
	if err != nil {
		return fmt.Errorf("calculate bollinger: %w", err)
	}

	sig := p.strategy.Generate(klines, tdiRes, bollRes)
	if sig == nil {
		return nil
	}
	sig.Symbol = symbol

	lastBar := klines[len(klines)-1]
	p.dispatcher.Dispatch(ctx, symbol, *sig, lastBar.Close, lastBar.OpenTime)
	return nil
}
