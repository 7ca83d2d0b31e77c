package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Infra struct {
	bot         sender
	adminChatID int64
	service     string
}

func NewInfra(token string, adminChatID int64, service string) (*Infra, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &Infra{bot: bot, adminChatID: adminChatID, service: service}, nil
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	text := fmt.Sprintf(
		"❗ Ошибка в сервисе (%s)\n\nОшибка: %v\n\nДетали: %s",
		i.service,
		err,
		details,
	)

	_, sendErr := i.bot.Send(tgbotapi.NewMessage(i.adminChatID, text))
	return sendErr
}
