package binance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/shopspring/decimal"

	"github.com/kofeld/signalbot/internal/service/exchange"
)

var _ exchange.MarketService = (*MarketService)(nil)

type MarketService struct {
	cli *futures.Client
}

// NewMarketService 创建市场数据服务
func NewMarketService(cli *futures.Client) *MarketService {
	return &MarketService{cli: cli}
}

func (m *MarketService) GetKlines(ctx context.Context, req exchange.GetKlinesReq) ([]exchange.Kline, error) {
	svc := m.cli.NewKlinesService().Symbol(req.Symbol.ToString()) // 币安合约API使用 BTCUSDT 格式，不是 BTC/USDT
	if req.Interval.ToString() != "" {
		svc.Interval(req.Interval.ToString())
	}
	if req.Lookback > 0 {
		svc.Limit(req.Lookback)
	}
	res, err := svc.Do(ctx)
	if err != nil {
		return nil, classify(err)
	}
	if len(res) == 0 {
		return nil, exchange.ErrNoData
	}
	return m.convertKlines(res)
}

func (m *MarketService) Ticker(ctx context.Context, symbol exchange.Symbol) (decimal.Decimal, error) {
	prices, err := m.cli.NewListPricesService().Symbol(symbol.ToString()).Do(ctx)
	if err != nil {
		return decimal.Zero, classify(err)
	}
	if len(prices) == 0 {
		return decimal.Zero, exchange.ErrNoData
	}
	return decimal.NewFromString(prices[0].Price)
}

func (m *MarketService) convertKlines(klines []*futures.Kline) ([]exchange.Kline, error) {
	kls := make([]exchange.Kline, len(klines))
	for i, k := range klines {
		klineOpen, err := decimal.NewFromString(k.Open)
		if err != nil {
			return nil, fmt.Errorf("parse kline open: %w", err)
		}
		klineClose, err := decimal.NewFromString(k.Close)
		if err != nil {
			return nil, fmt.Errorf("parse kline close: %w", err)
		}
		klineHigh, err := decimal.NewFromString(k.High)
		if err != nil {
			return nil, fmt.Errorf("parse kline high: %w", err)
		}
		klineLow, err := decimal.NewFromString(k.Low)
		if err != nil {
			return nil, fmt.Errorf("parse kline low: %w", err)
		}
		klineVolume, err := decimal.NewFromString(k.Volume)
		if err != nil {
			return nil, fmt.Errorf("parse kline volume: %w", err)
		}
		klineQuoteAssetVolume, err := decimal.NewFromString(k.QuoteAssetVolume)
		if err != nil {
			return nil, fmt.Errorf("parse kline quote volume: %w", err)
		}
		kls[i] = exchange.Kline{
			OpenTime:         time.UnixMilli(k.OpenTime),
			CloseTime:        time.UnixMilli(k.CloseTime),
			Open:             klineOpen,
			Close:            klineClose,
			High:             klineHigh,
			Low:              klineLow,
			Volume:           klineVolume,
			QuoteAssetVolume: klineQuoteAssetVolume,
		}
	}
	return kls, nil
}

// classify maps binance API errors onto the exchange error kinds. Unknown
// symbols and bad parameters are permanent misconfiguration; everything
// else (network, rate limit, 5xx) may succeed next cycle.
func classify(err error) error {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case -1121, -1120, -1100, -1102, -1130: // invalid symbol / interval / params
			return fmt.Errorf("%w: %s", exchange.ErrBadRequest, apiErr.Message)
		}
	}
	return &exchange.TransientError{Err: err}
}
