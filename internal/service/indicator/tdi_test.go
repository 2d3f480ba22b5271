package indicator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kofeld/signalbot/internal/service/exchange"
)

// trendKlines 创建测试用的K线数据
func trendKlines(count int, basePrice, changePercent float64) []exchange.Kline {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	klines := make([]exchange.Kline, count)
	price := basePrice
	for i := 0; i < count; i++ {
		openTime := start.Add(time.Duration(i) * 5 * time.Minute)
		next := price * (1.0 + changePercent)
		high, low := next, price
		if low > high {
			high, low = low, high
		}
		klines[i] = exchange.Kline{
			OpenTime:  openTime,
			CloseTime: openTime.Add(5 * time.Minute),
			Open:      decimal.NewFromFloat(price),
			Close:     decimal.NewFromFloat(next),
			High:      decimal.NewFromFloat(high * 1.001),
			Low:       decimal.NewFromFloat(low * 0.999),
			Volume:    decimal.NewFromFloat(1000),
		}
		price = next
	}
	return klines
}

func TestSuperTDI_NotEnoughData(t *testing.T) {
	tdi := NewSuperTDI(TDIConfig{})
	_, err := tdi.Calculate(trendKlines(10, 100, 0.001))
	assert.Error(t, err)
}

func TestSuperTDI_Downtrend(t *testing.T) {
	tdi := NewSuperTDI(TDIConfig{})
	res, err := tdi.Calculate(trendKlines(100, 100, -0.01))
	require.NoError(t, err)

	// persistent selling pressure keeps the fast line at the bottom
	assert.Less(t, res.RSI, 50.0)
	assert.LessOrEqual(t, res.RSI, res.MarketBase)
}

func TestSuperTDI_Deterministic(t *testing.T) {
	tdi := NewSuperTDI(TDIConfig{})
	klines := trendKlines(100, 100, 0.004)

	a, err := tdi.Calculate(klines)
	require.NoError(t, err)
	b, err := tdi.Calculate(klines)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSuperTDI_ZoneBounds(t *testing.T) {
	tdi := NewSuperTDI(TDIConfig{})
	for _, change := range []float64{-0.02, -0.001, 0, 0.001, 0.02} {
		res, err := tdi.Calculate(trendKlines(100, 100, change))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.RSI, 0.0)
		assert.LessOrEqual(t, res.RSI, 100.0)
		assert.NotEmpty(t, res.Zone)
	}
}

func TestVolumeSlope(t *testing.T) {
	klines := trendKlines(10, 100, 0.001)
	for i := range klines {
		klines[i].Volume = decimal.NewFromInt(int64(100 * (i + 1)))
	}
	assert.True(t, VolumeSlope(klines).IsPositive())
}
