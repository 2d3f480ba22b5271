package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kofeld/signalbot/internal/entity"
)

type KlineRepo interface {
	CreateBatch(ctx context.Context, klines []entity.Kline) error
	FindRecent(ctx context.Context, base, quote, interval string, limit int) ([]entity.Kline, error)
}

type klineRepo struct {
	db *gorm.DB
}

func NewKlineRepo(db *gorm.DB) KlineRepo {
	return &klineRepo{
		db: db,
	}
}

// CreateBatch inserts klines, silently skipping rows whose
// (symbol, interval, open_time) already exist.
func (r *klineRepo) CreateBatch(ctx context.Context, klines []entity.Kline) error {
	if len(klines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&klines).Error
}

func (r *klineRepo) FindRecent(ctx context.Context, base, quote, interval string, limit int) ([]entity.Kline, error) {
	var klines []entity.Kline
	err := r.db.WithContext(ctx).
		Where("base_symbol = ? AND quote_symbol = ? AND interval = ?", base, quote, interval).
		Order("open_time DESC").
		Limit(limit).
		Find(&klines).Error
	if err != nil {
		return nil, err
	}
	return klines, nil
}
