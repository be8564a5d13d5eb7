package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ufop-web/ticket-sales/internal/sales/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes sale lifecycle events to an operations chat. With an
// empty token it degrades to a no-op so local setups need no bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifySaleCreated(ctx context.Context, sale *domain.Sale) {
	text := fmt.Sprintf(
		"*New sale*\n\n"+"Sale: %s\n"+"Event: %s\n"+"Tickets: %d\n"+"Total: %s\n"+"Status: %s",
		sale.ID, sale.EventID, sale.Quantity, sale.TotalAmount.StringFixed(2), sale.Status,
	)
	n.send(text)
}

func (n *TelegramNotifier) NotifyPaymentCompleted(ctx context.Context, sale *domain.Sale, payment *domain.Payment) {
	text := fmt.Sprintf(
		"*Payment completed*\n\n"+"Sale: %s\n"+"Transaction: %s\n"+"Method: %s\n"+"Amount: %s",
		sale.ID, payment.TransactionID, payment.Method, payment.Amount.StringFixed(2),
	)
	n.send(text)
}

func (n *TelegramNotifier) NotifySaleCancelled(ctx context.Context, sale *domain.Sale) {
	text := fmt.Sprintf(
		"*Sale cancelled*\n\n"+"Sale: %s\n"+"Event: %s\n"+"Tickets: %d",
		sale.ID, sale.EventID, sale.Quantity,
	)
	n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
