package telegram

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kofeld/signalbot/internal/service/notifier"
)

var _ notifier.Notifier = (*Notifier)(nil)

// Notifier delivers alerts to a single Telegram chat.
type Notifier struct {
	bot    *tgbot.BotAPI
	chatID int64
}

func NewNotifier(bot *tgbot.BotAPI, chatID int64) *Notifier {
	return &Notifier{
		bot:    bot,
		chatID: chatID,
	}
}

// Init verifies the bot token against the Telegram API.
func (n *Notifier) Init(ctx context.Context) error {
	if n.chatID == 0 {
		return fmt.Errorf("telegram: chat id not configured")
	}
	if _, err := n.bot.GetMe(); err != nil {
		return fmt.Errorf("telegram: get me: %w", err)
	}
	return nil
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	msg := tgbot.NewMessage(n.chatID, text)
	msg.ParseMode = tgbot.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: send: %w", err)
	}
	return nil
}

func (n *Notifier) Shutdown(ctx context.Context) error {
	n.bot.StopReceivingUpdates()
	return nil
}
