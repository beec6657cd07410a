package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"menubot/internal/entity"
)

const welcomeText = `👋 Привет! Я бот для генерации изображений меню бизнес-ланчей.

📝 Отправь мне текст меню в следующем формате:

ПН:
1. БОРЩ [говядина, свёкла, сметана]
2. ПЛОВ [рис, курица, морковь]

ВТ:
1. СУП ЛАПША [куриный бульон, лапша]
2. ГРЕЧКА [гречка, курица]

И так далее для всех дней недели.

📅 Можно указать диапазон дат в любом месте:
15.12–19.12 или С 15.12 по 19.12

🚫 Для дней без бизнес-ланча:
ПТ:
БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ

или с датой:
ПТ:
ДО 12.01.26 БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ

✨ После обработки ты получишь готовое изображение меню!`

const helpText = `📖 Справка по использованию бота:

1. Отправь текст меню в формате:
   ДЕНЬ:
   1. НАЗВАНИЕ [описание]
   2. НАЗВАНИЕ [описание]

2. Поддерживаемые дни: ПН, ВТ, СР, ЧТ, ПТ

3. Каждое блюдо должно иметь:
   - Номер (1., 2., и т.д.)
   - Название
   - Описание в квадратных скобках []

4. Бот автоматически сгенерирует изображение меню.

📅 Диапазон дат:
Укажите даты в формате: 15.12–19.12
или: С 15.12 по 19.12

🚫 Отсутствие бизнес-ланча:
ПТ:
БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ

С датой:
ПТ:
ДО 12.01.26 БИЗНЕС ЛАНЧЕЙ НЕ БУДЕТ`

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.reply(msg.Chat.ID, welcomeText)
		return
	case "help":
		b.reply(msg.Chat.ID, helpText)
		return
	}

	b.handleMenuText(ctx, msg)
}

// handleMenuText рендерит меню из текста сообщения
// и отвечает фотографией или текстом ошибки
func (b *Bot) handleMenuText(ctx context.Context, msg *tgbotapi.Message) {
	typing := tgbotapi.NewChatAction(msg.Chat.ID, tgbotapi.ChatTyping)
	if _, err := b.api.Request(typing); err != nil {
		logrus.Debugf("Failed to send typing action: %v", err)
	}

	render, data, err := b.service.RenderMenu(ctx, entity.SourceTelegram, msg.Chat.ID, msg.Text)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"chat_id": msg.Chat.ID,
		}).Warnf("Render failed: %v", err)
		b.reply(msg.Chat.ID, "❌ Ошибка: "+err.Error())
		return
	}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  render.ID + ".png",
		Bytes: data,
	})
	photo.Caption = "✨ Готово! Ваше меню:"

	if _, err := b.api.Send(photo); err != nil {
		logrus.Errorf("Failed to send photo to chat %d: %v", msg.Chat.ID, err)
		b.reply(msg.Chat.ID, "❌ Не удалось отправить изображение.")
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logrus.Errorf("Failed to send message to chat %d: %v", chatID, err)
	}
}
