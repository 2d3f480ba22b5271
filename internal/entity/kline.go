package entity

import (
	"time"
)

// Kline 行情K线
type Kline struct {
	Id               int64     `gorm:"primaryKey;autoIncrement"`
	BaseSymbol       string    `gorm:"uniqueIndex:kline_idx"`
	QuoteSymbol      string    `gorm:"uniqueIndex:kline_idx"`
	Interval         string    `gorm:"uniqueIndex:kline_idx"`
	OpenTime         time.Time `gorm:"uniqueIndex:kline_idx"`
	CloseTime        time.Time
	Open             string
	Close            string
	High             string
	Low              string
	Volume           string
	QuoteAssetVolume string
	CreatedAt        time.Time
}
