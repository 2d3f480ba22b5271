package indicator

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/pkg/decimalx"
)

// SuperTDI computes a Traders Dynamic Index over a kline series: RSI
// smoothed into a fast line, a trade signal line, and a market base line.
// Pure over its input, no internal state.
type SuperTDI struct {
	rsiPeriod    int
	fastPeriod   int
	signalPeriod int
	basePeriod   int
}

type TDIConfig struct {
	RSIPeriod    int `mapstructure:"rsi_period"`
	FastPeriod   int `mapstructure:"fast_period"`
	SignalPeriod int `mapstructure:"signal_period"`
	BasePeriod   int `mapstructure:"base_period"`
}

func NewSuperTDI(cfg TDIConfig) *SuperTDI {
	t := &SuperTDI{
		rsiPeriod:    cfg.RSIPeriod,
		fastPeriod:   cfg.FastPeriod,
		signalPeriod: cfg.SignalPeriod,
		basePeriod:   cfg.BasePeriod,
	}
	if t.rsiPeriod <= 0 {
		t.rsiPeriod = 13
	}
	if t.fastPeriod <= 0 {
		t.fastPeriod = 2
	}
	if t.signalPeriod <= 0 {
		t.signalPeriod = 7
	}
	if t.basePeriod <= 0 {
		t.basePeriod = 34
	}
	return t
}

func (t *SuperTDI) warmup() int {
	return t.rsiPeriod + t.basePeriod
}

func (t *SuperTDI) Calculate(klines []exchange.Kline) (TDIResult, error) {
	if len(klines) < t.warmup() {
		return TDIResult{}, fmt.Errorf("tdi: need at least %d klines, got %d", t.warmup(), len(klines))
	}

	closes := lo.Map(klines, func(k exchange.Kline, _ int) float64 {
		return k.Close.InexactFloat64()
	})

	rsis := rsiSeries(closes, t.rsiPeriod)

	fast := sma(rsis, t.fastPeriod)
	signal := sma(rsis, t.signalPeriod)
	base := sma(rsis, t.basePeriod)

	res := TDIResult{
		RSI:        last(fast),
		SignalLine: last(signal),
		MarketBase: last(base),
	}
	res.Zone = t.zone(res)
	return res, nil
}

func (t *SuperTDI) zone(r TDIResult) Zone {
	switch {
	case r.RSI > r.SignalLine && r.RSI > r.MarketBase && r.RSI < 32:
		return ZoneStrongBuy
	case r.RSI > r.SignalLine && r.RSI > r.MarketBase:
		return ZoneBuy
	case r.RSI < r.SignalLine && r.RSI < r.MarketBase && r.RSI > 68:
		return ZoneStrongSell
	case r.RSI < r.SignalLine && r.RSI < r.MarketBase:
		return ZoneSell
	default:
		return ZoneNeutral
	}
}

// rsiSeries computes the Wilder RSI for every index from period onward.
func rsiSeries(closes []float64, period int) []float64 {
	rsis := make([]float64, 0, len(closes)-period)

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			avgGain += diff
		} else {
			avgLoss -= diff
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	rsis = append(rsis, rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if diff > 0 {
			gain = diff
		} else {
			loss = -diff
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		rsis = append(rsis, rsiValue(avgGain, avgLoss))
	}
	return rsis
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// sma returns the simple moving average of the tail `period` values.
func sma(values []float64, period int) []float64 {
	if period > len(values) {
		period = len(values)
	}
	out := make([]float64, 0, len(values)-period+1)
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out = append(out, sum/float64(period))
		}
	}
	return out
}

func last(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}

// VolumeSlope exposes the normalized slope of the series volumes. Used by
// strategies as a confirmation input.
func VolumeSlope(klines []exchange.Kline) decimal.Decimal {
	vols := lo.Map(klines, func(k exchange.Kline, _ int) decimal.Decimal {
		return k.Volume
	})
	return decimalx.Slope(vols)
}
