package bot

import (
	"context"
	"time"

	"github.com/kofeld/signalbot/internal/schedule"
	"github.com/kofeld/signalbot/internal/service/exchange"
)

var _ schedule.Task = (*CycleTask)(nil)

// CycleTask runs one full analysis pass: every configured symbol, in
// declared order, through the pipeline, with a courtesy pause between
// symbols. Per-symbol failures are absorbed inside the pipeline, so Run
// only errors on a genuine defect.
type CycleTask struct {
	pipeline    SymbolProcessor
	symbols     []exchange.Symbol
	symbolDelay time.Duration
}

func NewCycleTask(pipeline SymbolProcessor, cfg Config) *CycleTask {
	return &CycleTask{
		pipeline:    pipeline,
		symbols:     cfg.Symbols,
		symbolDelay: cfg.SymbolDelay,
	}
}

func (t *CycleTask) Run(ctx context.Context) error {
	for _, symbol := range t.symbols {
		t.pipeline.Process(ctx, symbol)
		if t.symbolDelay > 0 {
			time.Sleep(t.symbolDelay)
		}
	}
	return nil
}

func (t *CycleTask) Name() string {
	return "market analysis cycle"
}
