package entity

import (
	"time"
)

// Signal 策略信号
type Signal struct {
	Id              int64     `gorm:"primaryKey;autoIncrement"`
	BaseSymbol      string    `gorm:"uniqueIndex:signal_idx"`
	QuoteSymbol     string    `gorm:"uniqueIndex:signal_idx"`
	StrategyName    string    `gorm:"uniqueIndex:signal_idx"`
	BarTime         time.Time `gorm:"uniqueIndex:signal_idx"`
	Action          string    `gorm:"index"`
	Confidence      float64
	StopLoss        string
	TakeProfit      string
	TDISignal       string
	BollingerSignal string
	CreatedAt       time.Time `gorm:"index"`
}

const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
	ActionHold = "HOLD"
)
