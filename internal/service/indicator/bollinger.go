package indicator

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/kofeld/signalbot/internal/service/exchange"
)

// SuperBollinger computes SMA ± k·σ bands over the closes of a kline
// series. Pure over its input.
type SuperBollinger struct {
	period int
	mult   float64
}

type BollingerConfig struct {
	Period int     `mapstructure:"period"`
	StdDev float64 `mapstructure:"std_dev"`
}

func NewSuperBollinger(cfg BollingerConfig) *SuperBollinger {
	b := &SuperBollinger{
		period: cfg.Period,
		mult:   cfg.StdDev,
	}
	if b.period <= 0 {
		b.period = 20
	}
	if b.mult <= 0 {
		b.mult = 2
	}
	return b
}

func (b *SuperBollinger) Calculate(klines []exchange.Kline) (BollingerResult, error) {
	if len(klines) < b.period {
		return BollingerResult{}, fmt.Errorf("bollinger: need at least %d klines, got %d", b.period, len(klines))
	}

	closes := lo.Map(klines, func(k exchange.Kline, _ int) float64 {
		return k.Close.InexactFloat64()
	})
	window := closes[len(closes)-b.period:]

	var sum float64
	for _, c := range window {
		sum += c
	}
	middle := sum / float64(b.period)

	var variance float64
	for _, c := range window {
		d := c - middle
		variance += d * d
	}
	stdDev := math.Sqrt(variance / float64(b.period))

	res := BollingerResult{
		Middle: middle,
		Upper:  middle + b.mult*stdDev,
		Lower:  middle - b.mult*stdDev,
		Touch:  TouchNone,
	}

	lastBar := klines[len(klines)-1]
	closePrice := lastBar.Close.InexactFloat64()
	if res.Upper > res.Lower {
		res.PercentB = (closePrice - res.Lower) / (res.Upper - res.Lower)
	}
	// band touch uses the bar extremes, not just the close
	switch {
	case lastBar.Low.InexactFloat64() <= res.Lower:
		res.Touch = TouchLower
	case lastBar.High.InexactFloat64() >= res.Upper:
		res.Touch = TouchUpper
	}
	return res, nil
}
