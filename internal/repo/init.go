package repo

import (
	"gorm.io/gorm"

	"github.com/kofeld/signalbot/internal/entity"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Kline{}, &entity.Signal{})
}
