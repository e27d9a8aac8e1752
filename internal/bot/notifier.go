package bot

import (
	"context"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v3"
)

// TelegramNotifier delivers rendered text to a chat through the Telegram
// send API. It implements service.Notifier.
type TelegramNotifier struct {
	bot *tele.Bot
}

// NewTelegramNotifier creates a notifier over an existing telebot instance.
func NewTelegramNotifier(bot *tele.Bot) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

// Notify sends text to the chat identified by its decimal id. Delivery is
// best effort; the caller decides whether a failure matters.
func (n *TelegramNotifier) Notify(_ context.Context, chatID string, text string) error {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}

	if _, err := n.bot.Send(tele.ChatID(id), text); err != nil {
		return fmt.Errorf("failed to send message to chat %d: %w", id, err)
	}

	return nil
}
