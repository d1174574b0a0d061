package telegram

import (
	"context"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/olegmish/quickmeet/pkg/models"
)

const cmdStart = "/start"

const msgStart = `Привет! Напиши мне о событии, например:
«встретиться с Петей завтра в 19:00»
или
«meeting with John tomorrow at 7 PM»
Я создам событие в твоём календаре.`

const msgCannotParse = `Извини, произошла ошибка при обработке запроса. Попробуй написать более подробно, например:
«встретиться с Петей завтра в 19:00»
или
«meeting with John tomorrow at 7 PM»`

const (
	msgEmptyText     = "Пожалуйста, отправь текстовое сообщение."
	msgProcessing    = "Обрабатываю запрос..."
	msgCalendarError = "Извини, произошла ошибка при создании события в календаре."
)

func (t *Telegram) initHandlers() {
	t.bot.Handle(cmdStart, t.startHandler)
	t.bot.Handle(tele.OnText, t.eventHandler)
}

func (t *Telegram) startHandler(ctx tele.Context) error {
	return ctx.Send(msgStart)
}

// eventHandler feeds one message through the pipeline and renders the
// outcome. Failure details never reach the user, only a retry prompt.
func (t *Telegram) eventHandler(ctx tele.Context) error {
	text := strings.TrimSpace(ctx.Text())
	userID := ctx.Sender().ID
	if text == "" {
		return ctx.Send(msgEmptyText)
	}
	if err := ctx.Send(msgProcessing); err != nil {
		return fmt.Errorf("tg send message failed: %w", err)
	}

	outcome := t.app.Submit(context.Background(), text)
	if !outcome.OK() {
		t.log.Warnf("submit failed for user %d: kind=%s (text: %q)", userID, outcome.Failure.Kind, text)
		return ctx.Send(failureReply(outcome.Failure.Kind))
	}

	t.log.Infof("event created for user %d: %s at %s", userID, outcome.Event.Title, outcome.Event.Start)
	return ctx.Send(confirmation(*outcome.Event))
}

func confirmation(event models.ScheduledEvent) string {
	return fmt.Sprintf("✅ Событие добавлено: %s\n📅 Дата: %s\n🕐 Время: %s",
		event.Title, event.Start.Format("02.01.2006"), event.Start.Format("15:04"))
}

func failureReply(kind models.FailureKind) string {
	switch kind {
	case models.FailAPIError, models.FailUnknown:
		return msgCalendarError
	default:
		return msgCannotParse
	}
}
