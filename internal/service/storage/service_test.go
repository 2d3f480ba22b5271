package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kofeld/signalbot/internal/entity"
	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/strategy"
)

func newTestService(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	svc := NewService(db)
	require.NoError(t, svc.Init(context.Background()))
	return svc
}

func series(count int) []exchange.Kline {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	klines := make([]exchange.Kline, count)
	for i := 0; i < count; i++ {
		openTime := start.Add(time.Duration(i) * 5 * time.Minute)
		klines[i] = exchange.Kline{
			OpenTime:  openTime,
			CloseTime: openTime.Add(5 * time.Minute),
			Open:      decimal.NewFromInt(100),
			Close:     decimal.NewFromInt(101),
			High:      decimal.NewFromInt(102),
			Low:       decimal.NewFromInt(99),
			Volume:    decimal.NewFromInt(1000),
		}
	}
	return klines
}

func TestStoreSeries_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	symbol := exchange.Symbol{Base: "BTC", Quote: "USDT"}

	require.NoError(t, svc.StoreSeries(ctx, symbol, exchange.Interval5m, series(10)))
	// repeated identical timestamps must not duplicate rows
	require.NoError(t, svc.StoreSeries(ctx, symbol, exchange.Interval5m, series(10)))

	var count int64
	require.NoError(t, svc.db.Model(&entity.Kline{}).Count(&count).Error)
	assert.Equal(t, int64(10), count)
}

func TestStoreSignal_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	symbol := exchange.Symbol{Base: "BTC", Quote: "USDT"}

	stopLoss := decimal.NewFromFloat(98.5)
	sig := strategy.Signal{
		Action:       strategy.Buy,
		Confidence:   72.5,
		StrategyName: "consolidated_tdi_bollinger",
		StopLoss:     &stopLoss,
		TDISignal:    "buy",
	}
	ts := time.Date(2024, 6, 1, 14, 5, 0, 0, time.UTC)

	require.NoError(t, svc.StoreSignal(ctx, symbol, sig, ts))
	require.NoError(t, svc.StoreSignal(ctx, symbol, sig, ts))

	var rows []entity.Signal
	require.NoError(t, svc.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "BUY", rows[0].Action)
	assert.Equal(t, 72.5, rows[0].Confidence)
	assert.Equal(t, "98.5", rows[0].StopLoss)
	assert.Equal(t, "", rows[0].TakeProfit)
}

func TestClose(t *testing.T) {
	svc := newTestService(t)
	assert.NoError(t, svc.Close())
}
