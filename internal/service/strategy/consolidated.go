package strategy

import (
	"github.com/shopspring/decimal"

	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/indicator"
)

const consolidatedName = "consolidated_tdi_bollinger"

// ConsolidatedStrategy signals only when the TDI zone and a Bollinger band
// rejection agree: buy when TDI is in a buy zone and price rejected the
// lower band, sell when TDI is in a sell zone and price rejected the upper
// band.
type ConsolidatedStrategy struct {
	minConfidence float64
	stopPct       decimal.Decimal
	takePct       decimal.Decimal
}

type ConsolidatedConfig struct {
	MinConfidence float64 `mapstructure:"min_confidence"`
	StopLossPct   float64 `mapstructure:"stop_loss_pct"`
	TakeProfitPct float64 `mapstructure:"take_profit_pct"`
}

func NewConsolidatedStrategy(cfg ConsolidatedConfig) *ConsolidatedStrategy {
	s := &ConsolidatedStrategy{
		minConfidence: cfg.MinConfidence,
		stopPct:       decimal.NewFromFloat(cfg.StopLossPct),
		takePct:       decimal.NewFromFloat(cfg.TakeProfitPct),
	}
	if s.minConfidence <= 0 {
		s.minConfidence = 50
	}
	if s.stopPct.IsZero() {
		s.stopPct = decimal.NewFromFloat(0.02)
	}
	if s.takePct.IsZero() {
		s.takePct = decimal.NewFromFloat(0.04)
	}
	return s
}

func (s *ConsolidatedStrategy) Name() string {
	return consolidatedName
}

func (s *ConsolidatedStrategy) Generate(klines []exchange.Kline, tdi indicator.TDIResult, boll indicator.BollingerResult) *Signal {
	if len(klines) == 0 {
		return nil
	}
	lastBar := klines[len(klines)-1]

	var action Action
	switch {
	case bullish(tdi.Zone) && boll.Touch == indicator.TouchLower:
		action = Buy
	case bearish(tdi.Zone) && boll.Touch == indicator.TouchUpper:
		action = Sell
	default:
		return nil
	}

	confidence := s.confidence(action, tdi, boll, indicator.VolumeSlope(klines))
	if confidence < s.minConfidence {
		return nil
	}

	price := lastBar.Close
	var stopLoss, takeProfit decimal.Decimal
	if action == Buy {
		stopLoss = price.Mul(decimal.NewFromInt(1).Sub(s.stopPct))
		takeProfit = price.Mul(decimal.NewFromInt(1).Add(s.takePct))
	} else {
		stopLoss = price.Mul(decimal.NewFromInt(1).Add(s.stopPct))
		takeProfit = price.Mul(decimal.NewFromInt(1).Sub(s.takePct))
	}

	return &Signal{
		Action:          action,
		Confidence:      confidence,
		StrategyName:    consolidatedName,
		StopLoss:        &stopLoss,
		TakeProfit:      &takeProfit,
		TDISignal:       string(tdi.Zone),
		BollingerSignal: string(boll.Touch),
		Timestamp:       lastBar.OpenTime,
	}
}

// confidence scores 0-100: half from how far the TDI fast line clears the
// market base, half from how deep the bar pushed past the band, plus small
// bonuses for a strong zone and rising volume behind the move.
func (s *ConsolidatedStrategy) confidence(action Action, tdi indicator.TDIResult, boll indicator.BollingerResult, volSlope decimal.Decimal) float64 {
	tdiSpread := tdi.RSI - tdi.MarketBase
	bandDepth := -boll.PercentB
	if action == Sell {
		tdiSpread = -tdiSpread
		bandDepth = boll.PercentB - 1
	}
	score := 50 + tdiSpread + bandDepth*50
	if tdi.Zone == indicator.ZoneStrongBuy || tdi.Zone == indicator.ZoneStrongSell {
		score += 10
	}
	if volSlope.IsPositive() {
		score += 5
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func bullish(z indicator.Zone) bool {
	return z == indicator.ZoneBuy || z == indicator.ZoneStrongBuy
}

func bearish(z indicator.Zone) bool {
	return z == indicator.ZoneSell || z == indicator.ZoneStrongSell
}
