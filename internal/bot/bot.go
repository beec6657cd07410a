package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"menubot/internal/service"
)

// Bot принимает текст меню в Telegram и отвечает готовым изображением
type Bot struct {
	api     *tgbotapi.BotAPI
	service service.RenderService
}

func NewBot(token string, renderService service.RenderService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Authorized on Telegram account %s", api.Self.UserName)

	return &Bot{
		api:     api,
		service: renderService,
	}, nil
}

// Run запускает long polling до отмены контекста
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	logrus.Info("Telegram bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logrus.Info("Telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}
