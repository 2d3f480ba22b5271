package bot

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/indicator"
	"github.com/kofeld/signalbot/internal/service/strategy"
)

// ============ Mock 定义 ============

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetKlines(ctx context.Context, req exchange.GetKlinesReq) ([]exchange.Kline, error) {
	args := m.Called(ctx, req)
	if kls := args.Get(0); kls != nil {
		return kls.([]exchange.Kline), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDataStore struct {
	mock.Mock
}

func (m *MockDataStore) Init(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDataStore) Close() error {
	return m.Called().Error(0)
}

func (m *MockDataStore) StoreSeries(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval, klines []exchange.Kline) error {
	return m.Called(ctx, symbol, interval, klines).Error(0)
}

func (m *MockDataStore) StoreSignal(ctx context.Context, symbol exchange.Symbol, sig strategy.Signal, ts time.Time) error {
	return m.Called(ctx, symbol, sig, ts).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Init(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockNotifier) Send(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

func (m *MockNotifier) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockTDIEngine struct {
	mock.Mock
}

func (m *MockTDIEngine) Calculate(klines []exchange.Kline) (indicator.TDIResult, error) {
	args := m.Called(klines)
	return args.Get(0).(indicator.TDIResult), args.Error(1)
}

type MockBollingerEngine struct {
	mock.Mock
}

func (m *MockBollingerEngine) Calculate(klines []exchange.Kline) (indicator.BollingerResult, error) {
	args := m.Called(klines)
	return args.Get(0).(indicator.BollingerResult), args.Error(1)
}

type MockStrategy struct {
	mock.Mock
}

func (m *MockStrategy) Generate(klines []exchange.Kline, tdi indicator.TDIResult, boll indicator.BollingerResult) *strategy.Signal {
	args := m.Called(klines, tdi, boll)
	if sig := args.Get(0); sig != nil {
		return sig.(*strategy.Signal)
	}
	return nil
}

func (m *MockStrategy) Name() string {
	return "mock_strategy"
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, symbol exchange.Symbol, sig strategy.Signal, price decimal.Decimal, ts time.Time) {
	m.Called(ctx, symbol, sig, price, ts)
}

// createTestKlines 创建测试用的K线数据
func createTestKlines(startTime time.Time, count int, basePrice float64, interval exchange.Interval) []exchange.Kline {
	klines := make([]exchange.Kline, count)
	price := basePrice
	for i := 0; i < count; i++ {
		openTime := startTime.Add(time.Duration(i) * interval.Duration())
		next := price * 1.001
		klines[i] = exchange.Kline{
			OpenTime:         openTime,
			CloseTime:        openTime.Add(interval.Duration()),
			Open:             decimal.NewFromFloat(price),
			Close:            decimal.NewFromFloat(next),
			High:             decimal.NewFromFloat(next * 1.001),
			Low:              decimal.NewFromFloat(price * 0.999),
			Volume:           decimal.NewFromFloat(1000),
			QuoteAssetVolume: decimal.NewFromFloat(price * 1000),
		}
		price = next
	}
	return klines
}

type processorFunc func(ctx context.Context, symbol string)

func (f processorFunc) Process(ctx context.Context, symbol exchange.Symbol) {
	f(ctx, symbol.ToSlashString())
}

func mustSymbol(s string) exchange.Symbol {
	symbol, err := exchange.ParseSymbol(s)
	if err != nil {
		panic(err)
	}
	return symbol
}
