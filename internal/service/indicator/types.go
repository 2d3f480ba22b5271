package indicator

// Zone describes where the TDI fast line sits relative to its bands and
// the signal line.
type Zone string

const (
	ZoneStrongBuy  Zone = "strong_buy"
	ZoneBuy        Zone = "buy"
	ZoneNeutral    Zone = "neutral"
	ZoneSell       Zone = "sell"
	ZoneStrongSell Zone = "strong_sell"
)

// TDIResult TDI指标输出
type TDIResult struct {
	RSI        float64 // smoothed RSI (fast line)
	SignalLine float64 // trade signal line
	MarketBase float64 // market base line
	Zone       Zone
}

// BandTouch describes the last close relative to the Bollinger bands.
type BandTouch string

const (
	TouchUpper BandTouch = "upper_band"
	TouchLower BandTouch = "lower_band"
	TouchNone  BandTouch = "none"
)

// BollingerResult 布林带指标输出
type BollingerResult struct {
	Upper    float64
	Middle   float64
	Lower    float64
	PercentB float64 // (close - lower) / (upper - lower)
	Touch    BandTouch
}
