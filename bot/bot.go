package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"zadachnik/models"
	"zadachnik/store"
)

// telegramAPI is the slice of *tgbotapi.BotAPI the router needs; tests
// substitute a fake.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api      telegramAPI
	store    store.TaskStore
	sessions *SessionStore
}

func New(api telegramAPI, st store.TaskStore) *Bot {
	return &Bot{
		api:      api,
		store:    st,
		sessions: NewSessionStore(),
	}
}

// Run consumes updates until the channel closes. Updates are handled
// one at a time; handler errors are logged and the loop keeps going.
func (b *Bot) Run(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message != nil {
			if err := b.handleMessage(update.Message); err != nil {
				log.Println("handle message:", err)
			}
		}
		if update.CallbackQuery != nil {
			if err := b.handleCallback(update.CallbackQuery); err != nil {
				log.Println("handle callback:", err)
			}
		}
	}
}

func (b *Bot) handleMessage(m *tgbotapi.Message) error {
	if m.From == nil {
		return nil
	}
	user := m.From.ID

	if m.IsCommand() {
		switch m.Command() {
		case "start":
			b.sessions.Delete(user)
			return b.cmdStart(m)
		case "add":
			return b.cmdAdd(m)
		case "list":
			b.sessions.Delete(user)
			return b.cmdList(m)
		case "edit":
			b.sessions.Delete(user)
			return b.cmdEdit(m)
		case "list_csv":
			b.sessions.Delete(user)
			return b.cmdExport(m)
		default:
			return b.replyMain(m.Chat.ID, "Неизвестная команда. Нажми /start для справки.")
		}
	}

	switch m.Text {
	case btnAdd:
		return b.onAddButton(m)
	case btnList:
		b.sessions.Delete(user)
		return b.cmdList(m)
	case btnEdit:
		b.sessions.Delete(user)
		return b.cmdEdit(m)
	case btnExport:
		b.sessions.Delete(user)
		return b.cmdExport(m)
	case btnCancel:
		b.sessions.Delete(user)
		return b.replyMain(m.Chat.ID, "Отменено.")
	}

	return b.onText(m)
}

func (b *Bot) cmdStart(m *tgbotapi.Message) error {
	return b.replyMain(m.Chat.ID,
		"Привет! Это простой бот для хранения задач.\n\n"+
			"Используй кнопки ниже или команды:\n"+
			"/add <текст задачи> — добавить задачу\n"+
			"/list — показать все задачи\n"+
			"/edit — выбрать задачу для изменения статуса и категории\n"+
			"/list_csv — получить задачи в виде CSV файла\n\n"+
			"Статусы: Новый, Выполнена\n"+
			"Категории: Важная, Неважная")
}

func (b *Bot) cmdAdd(m *tgbotapi.Message) error {
	user := m.From.ID
	b.sessions.Delete(user)

	text := strings.TrimSpace(m.CommandArguments())
	if validateTaskText(text) != nil {
		return b.replyMain(m.Chat.ID, "Пожалуйста, укажи текст задачи после команды /add.")
	}
	return b.startDraft(m.Chat.ID, user, text)
}

// startDraft stores the draft text and asks for the status.
func (b *Bot) startDraft(chatID, user int64, text string) error {
	b.sessions.Put(user, models.Session{
		Stage: models.StageSelectingStatus,
		Draft: models.Draft{Text: text},
	})

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Задача: %s\n\nВыбери статус:", text))
	msg.ReplyMarkup = statusKeyboard(user)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) onAddButton(m *tgbotapi.Message) error {
	user := m.From.ID
	b.sessions.Delete(user)
	b.sessions.Put(user, models.Session{Stage: models.StageAwaitingText})

	msg := tgbotapi.NewMessage(m.Chat.ID, "Введи текст задачи, которую хочешь добавить:")
	msg.ReplyMarkup = cancelKeyboard()
	_, err := b.api.Send(msg)
	return err
}

// onText handles free text: it either feeds the creation flow or falls
// back to a hint.
func (b *Bot) onText(m *tgbotapi.Message) error {
	user := m.From.ID

	sess, ok := b.sessions.Get(user)
	if ok && sess.Stage == models.StageAwaitingText {
		text := strings.TrimSpace(m.Text)
		if validateTaskText(text) != nil {
			return b.reply(m.Chat.ID, "Текст задачи не может быть пустым. Попробуй ещё раз или нажми «❌ Отмена».")
		}
		return b.startDraft(m.Chat.ID, user, text)
	}

	return b.replyMain(m.Chat.ID,
		"Используй кнопки внизу экрана или команды для работы с ботом.\nНажми /start для справки.")
}

func (b *Bot) cmdList(m *tgbotapi.Message) error {
	tasks, err := b.store.List(context.Background(), m.From.ID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return b.replyMain(m.Chat.ID, "У тебя пока нет задач.")
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s %s %s\n   Статус: %s | Категория: %s | Создано: %s",
			t.ID, models.StatusGlyph(t.Status), models.CategoryGlyph(t.Category), t.Text,
			models.StatusLabel(t.Status), models.CategoryLabel(t.Category), t.CreatedAt.Format("02.01.2006 15:04")))
	}
	return b.replyMain(m.Chat.ID, strings.Join(lines, "\n\n"))
}

func (b *Bot) cmdEdit(m *tgbotapi.Message) error {
	tasks, err := b.store.List(context.Background(), m.From.ID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return b.replyMain(m.Chat.ID, "У тебя пока нет задач для редактирования.")
	}

	msg := tgbotapi.NewMessage(m.Chat.ID, "Выбери задачу для редактирования:")
	msg.ReplyMarkup = taskListKeyboard(tasks)
	_, err = b.api.Send(msg)
	return err
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) error {
	if cq.From == nil || cq.Message == nil {
		return nil
	}

	act, err := parseCallback(cq.Data)
	if err != nil {
		// unknown or malformed payload: notify and change nothing
		return b.answerAlert(cq.ID, "Кнопка устарела или повреждена.")
	}

	ctx := context.Background()

	switch act.Kind {
	case actionSelectTask:
		if err := b.showTaskMenu(ctx, cq, act.Task); err != nil {
			return err
		}
		return b.answer(cq.ID, "")

	case actionSetStatus:
		_, found, err := b.store.Get(ctx, act.Task, cq.From.ID)
		if err != nil {
			return err
		}
		if !found {
			return b.answerAlert(cq.ID, "Задача не найдена!")
		}
		if err := b.store.Update(ctx, act.Task, cq.From.ID, &act.Value, nil); err != nil {
			return err
		}
		if err := b.answer(cq.ID, "Статус изменён на: "+models.StatusLabel(act.Value)); err != nil {
			return err
		}
		return b.showTaskMenu(ctx, cq, act.Task)

	case actionSetCategory:
		_, found, err := b.store.Get(ctx, act.Task, cq.From.ID)
		if err != nil {
			return err
		}
		if !found {
			return b.answerAlert(cq.ID, "Задача не найдена!")
		}
		if err := b.store.Update(ctx, act.Task, cq.From.ID, nil, &act.Value); err != nil {
			return err
		}
		if err := b.answer(cq.ID, "Категория изменена на: "+models.CategoryLabel(act.Value)); err != nil {
			return err
		}
		return b.showTaskMenu(ctx, cq, act.Task)

	case actionNewStatus:
		return b.onNewTaskStatus(cq, act)

	case actionNewCategory:
		return b.onNewTaskCategory(ctx, cq, act)

	case actionBackToList:
		return b.onBackToList(ctx, cq)
	}
	return nil
}

// onNewTaskStatus records the chosen status in the draft and moves the
// flow to category selection.
func (b *Bot) onNewTaskStatus(cq *tgbotapi.CallbackQuery, act callbackAction) error {
	if cq.From.ID != act.User {
		return b.answerAlert(cq.ID, "Это не твоя задача!")
	}

	sess, ok := b.sessions.Get(act.User)
	if !ok || sess.Stage != models.StageSelectingStatus || sess.Draft.Text == "" {
		b.sessions.Delete(act.User)
		if err := b.answerAlert(cq.ID, "Текст задачи не найден. Начни заново."); err != nil {
			return err
		}
		return b.editText(cq, "Произошла ошибка. Попробуй добавить задачу заново.")
	}

	sess.Stage = models.StageSelectingCategory
	sess.Draft.Status = act.Value
	b.sessions.Put(act.User, sess)

	edit := tgbotapi.NewEditMessageTextAndMarkup(cq.Message.Chat.ID, cq.Message.MessageID,
		fmt.Sprintf("Задача: %s\nСтатус: %s %s\n\nВыбери категорию:",
			sess.Draft.Text, models.StatusGlyph(act.Value), models.StatusLabel(act.Value)),
		categoryKeyboard(act.User))
	if _, err := b.api.Send(edit); err != nil {
		return err
	}
	return b.answer(cq.ID, "Статус: "+models.StatusLabel(act.Value))
}

// onNewTaskCategory completes the creation flow: the draft goes to the
// store and the session is discarded.
func (b *Bot) onNewTaskCategory(ctx context.Context, cq *tgbotapi.CallbackQuery, act callbackAction) error {
	if cq.From.ID != act.User {
		return b.answerAlert(cq.ID, "Это не твоя задача!")
	}

	sess, ok := b.sessions.Get(act.User)
	if !ok || sess.Stage != models.StageSelectingCategory || sess.Draft.Text == "" {
		b.sessions.Delete(act.User)
		if err := b.answerAlert(cq.ID, "Данные не найдены. Начни заново."); err != nil {
			return err
		}
		return b.editText(cq, "Произошла ошибка. Попробуй добавить задачу заново.")
	}

	status := sess.Draft.Status
	if status == "" {
		status = models.StatusNew
	}

	if _, err := b.store.Add(ctx, sess.Draft.Text, act.User, status, act.Value); err != nil {
		return err
	}
	b.sessions.Delete(act.User)

	confirmation := fmt.Sprintf("✅ Задача добавлена!\n\nЗадача: %s\nСтатус: %s %s\nКатегория: %s %s",
		sess.Draft.Text,
		models.StatusGlyph(status), models.StatusLabel(status),
		models.CategoryGlyph(act.Value), models.CategoryLabel(act.Value))
	if err := b.editText(cq, confirmation); err != nil {
		return err
	}
	if err := b.answer(cq.ID, "Задача добавлена!"); err != nil {
		return err
	}
	return b.replyMain(cq.Message.Chat.ID, "Что дальше?")
}

func (b *Bot) onBackToList(ctx context.Context, cq *tgbotapi.CallbackQuery) error {
	tasks, err := b.store.List(ctx, cq.From.ID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		if err := b.editText(cq, "У тебя пока нет задач для редактирования."); err != nil {
			return err
		}
		return b.answer(cq.ID, "")
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(cq.Message.Chat.ID, cq.Message.MessageID,
		"Выбери задачу для редактирования:", taskListKeyboard(tasks))
	if _, err := b.api.Send(edit); err != nil {
		return err
	}
	return b.answer(cq.ID, "")
}

// showTaskMenu redraws the detail view of one task in place.
func (b *Bot) showTaskMenu(ctx context.Context, cq *tgbotapi.CallbackQuery, id int64) error {
	t, found, err := b.store.Get(ctx, id, cq.From.ID)
	if err != nil {
		return err
	}
	if !found {
		return b.answerAlert(cq.ID, "Задача не найдена!")
	}

	text := fmt.Sprintf("Задача #%d: %s %s %s\n\nТекущий статус: %s\nТекущая категория: %s\n\nВыбери действие:",
		t.ID, models.StatusGlyph(t.Status), models.CategoryGlyph(t.Category), t.Text,
		models.StatusLabel(t.Status), models.CategoryLabel(t.Category))

	edit := tgbotapi.NewEditMessageTextAndMarkup(cq.Message.Chat.ID, cq.Message.MessageID,
		text, taskMenuKeyboard(t))
	_, err = b.api.Send(edit)
	return err
}

func (b *Bot) reply(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// replyMain replies with the persistent keyboard attached.
func (b *Bot) replyMain(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = mainKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) answer(id, text string) error {
	_, err := b.api.Request(tgbotapi.NewCallback(id, text))
	return err
}

func (b *Bot) answerAlert(id, text string) error {
	_, err := b.api.Request(tgbotapi.NewCallbackWithAlert(id, text))
	return err
}

func (b *Bot) editText(cq *tgbotapi.CallbackQuery, text string) error {
	edit := tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, text)
	_, err := b.api.Send(edit)
	return err
}
