package ioc

import (
	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"

	"github.com/kofeld/signalbot/internal/service/notifier/telegram"
)

func InitTelegramNotifier() *telegram.Notifier {
	type Config struct {
		Token  string `mapstructure:"token"`
		ChatID int64  `mapstructure:"chat_id"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("telegram", &cfg); err != nil {
		panic(err)
	}
	if cfg.Token == "" {
		panic("no telegram bot token set")
	}

	bot, err := tgbot.NewBotAPI(cfg.Token)
	if err != nil {
		panic(err)
	}
	return telegram.NewNotifier(bot, cfg.ChatID)
}
