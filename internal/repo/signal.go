package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kofeld/signalbot/internal/entity"
)

type SignalRepo interface {
	Create(ctx context.Context, signal entity.Signal) (int64, error)
	FindBySymbol(ctx context.Context, base, quote string, limit int) ([]entity.Signal, error)
	FindSince(ctx context.Context, since time.Time) ([]entity.Signal, error)
}

type signalRepo struct {
	db *gorm.DB
}

func NewSignalRepo(db *gorm.DB) SignalRepo {
	return &signalRepo{
		db: db,
	}
}

// Create inserts a signal. A repeat insert for the same
// (symbol, strategy, bar_time) is a no-op and returns id 0.
func (r *signalRepo) Create(ctx context.Context, signal entity.Signal) (int64, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&signal).Error
	if err != nil {
		return 0, err
	}
	return signal.Id, nil
}

func (r *signalRepo) FindBySymbol(ctx context.Context, base, quote string, limit int) ([]entity.Signal, error) {
	var signals []entity.Signal
	err := r.db.WithContext(ctx).
		Where("base_symbol = ? AND quote_symbol = ?", base, quote).
		Order("created_at DESC").
		Limit(limit).
		Find(&signals).Error
	if err != nil {
		return nil, err
	}
	return signals, nil
}

func (r *signalRepo) FindSince(ctx context.Context, since time.Time) ([]entity.Signal, error) {
	var signals []entity.Signal
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&signals).Error
	if err != nil {
		return nil, err
	}
	return signals, nil
}
