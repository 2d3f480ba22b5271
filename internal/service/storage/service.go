package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kofeld/signalbot/internal/entity"
	"github.com/kofeld/signalbot/internal/repo"
	"github.com/kofeld/signalbot/internal/service/exchange"
	"github.com/kofeld/signalbot/internal/service/strategy"
)

// Service persists kline series and strategy signals behind a scoped
// lifecycle: Init migrates tables, Close releases the underlying handle.
type Service struct {
	db         *gorm.DB
	klineRepo  repo.KlineRepo
	signalRepo repo.SignalRepo
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:         db,
		klineRepo:  repo.NewKlineRepo(db),
		signalRepo: repo.NewSignalRepo(db),
	}
}

func (s *Service) Init(ctx context.Context) error {
	if err := repo.InitTables(s.db.WithContext(ctx)); err != nil {
		return fmt.Errorf("init tables: %w", err)
	}
	return nil
}

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Service) StoreSeries(ctx context.Context, symbol exchange.Symbol, interval exchange.Interval, klines []exchange.Kline) error {
	rows := make([]entity.Kline, len(klines))
	for i, k := range klines {
		rows[i] = entity.Kline{
			BaseSymbol:       symbol.Base,
			QuoteSymbol:      symbol.Quote,
			Interval:         interval.ToString(),
			OpenTime:         k.OpenTime,
			CloseTime:        k.CloseTime,
			Open:             k.Open.String(),
			Close:            k.Close.String(),
			High:             k.High.String(),
			Low:              k.Low.String(),
			Volume:           k.Volume.String(),
			QuoteAssetVolume: k.QuoteAssetVolume.String(),
		}
	}
	return s.klineRepo.CreateBatch(ctx, rows)
}

func (s *Service) StoreSignal(ctx context.Context, symbol exchange.Symbol, sig strategy.Signal, ts time.Time) error {
	row := entity.Signal{
		BaseSymbol:      symbol.Base,
		QuoteSymbol:     symbol.Quote,
		StrategyName:    sig.StrategyName,
		BarTime:         ts,
		Action:          string(sig.Action),
		Confidence:      sig.Confidence,
		TDISignal:       sig.TDISignal,
		BollingerSignal: sig.BollingerSignal,
	}
	if sig.StopLoss != nil {
		row.StopLoss = sig.StopLoss.String()
	}
	if sig.TakeProfit != nil {
		row.TakeProfit = sig.TakeProfit.String()
	}
	_, err := s.signalRepo.Create(ctx, row)
	return err
}
