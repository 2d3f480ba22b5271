package decimalx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSlope(t *testing.T) {
	testCases := []struct {
		name     string
		ds       []decimal.Decimal
		positive bool
	}{
		{
			name: "rising",
			ds: []decimal.Decimal{
				decimal.NewFromInt(1),
				decimal.NewFromInt(2),
				decimal.NewFromInt(3),
				decimal.NewFromInt(4),
			},
			positive: true,
		},
		{
			name: "big num",
			ds: []decimal.Decimal{
				decimal.NewFromInt(100),
				decimal.NewFromInt(200),
				decimal.NewFromInt(300),
			},
			positive: true,
		},
		{
			name: "falling",
			ds: []decimal.Decimal{
				decimal.NewFromInt(5),
				decimal.NewFromInt(3),
				decimal.NewFromInt(1),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slope := Slope(tc.ds)
			t.Log(slope)
			assert.Equal(t, tc.positive, slope.IsPositive())
		})
	}
}

func TestSlopeFlat(t *testing.T) {
	ds := []decimal.Decimal{
		decimal.NewFromInt(7),
		decimal.NewFromInt(7),
		decimal.NewFromInt(7),
	}
	assert.True(t, Slope(ds).IsZero())
}
