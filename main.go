package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kofeld/signalbot/internal/service/bot"
	"github.com/kofeld/signalbot/internal/service/exchange/binance"
	"github.com/kofeld/signalbot/internal/service/indicator"
	"github.com/kofeld/signalbot/internal/service/storage"
	"github.com/kofeld/signalbot/internal/service/strategy"
	"github.com/kofeld/signalbot/ioc"
)

func initViper() {
	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.dev.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()
	os.Exit(run())
}

func run() int {
	cfg := ioc.InitBotConfig()

	db := ioc.InitDB()
	bian := ioc.InitBinanceCli()
	notif := ioc.InitTelegramNotifier()

	marketSvc := binance.NewMarketService(bian)
	store := storage.NewService(db)

	tdi := indicator.NewSuperTDI(ioc.InitTDIConfig())
	bollinger := indicator.NewSuperBollinger(ioc.InitBollingerConfig())
	strat := strategy.NewConsolidatedStrategy(ioc.InitStrategyConfig())

	dispatcher := bot.NewDispatcher(store, notif)
	pipeline := bot.NewPipeline(marketSvc, store, tdi, bollinger, strat, dispatcher, notif, cfg)
	cycle := bot.NewCycleTask(pipeline, cfg)
	scheduler := bot.NewScheduler(cycle, cfg)
	b := bot.NewBot(scheduler, store, notif)

	ctx := context.Background()
	if err := b.Initialize(ctx); err != nil {
		slog.Error("failed to initialize bot", "error", err)
		return 1
	}

	// interrupt handling registered only after the bot is fully constructed
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)

	errC := make(chan error, 1)
	go func() {
		errC <- b.Run(ctx)
	}()

	select {
	case sig := <-sigC:
		slog.Info("received signal, shutting down", "signal", sig)
		b.Shutdown(ctx)
		if err := <-errC; err != nil {
			return 1
		}
		return 0
	case err := <-errC:
		b.Shutdown(ctx)
		if err != nil {
			return 1
		}
		return 0
	}
}
