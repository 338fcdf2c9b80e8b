package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"zadachnik/models"
)

// Persistent reply-keyboard buttons.
const (
	btnAdd    = "➕ Добавить задачу"
	btnList   = "📋 Список задач"
	btnEdit   = "✏️ Редактировать задачу"
	btnExport = "📥 Экспорт CSV"
	btnCancel = "❌ Отмена"
)

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAdd),
			tgbotapi.NewKeyboardButton(btnList),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnEdit),
			tgbotapi.NewKeyboardButton(btnExport),
		),
	)
	kb.InputFieldPlaceholder = "Выбери команду или используй /start"
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

// statusKeyboard offers the status choice during task creation. The
// callback data embeds the originating user id so a replayed button
// cannot complete someone else's draft.
func statusKeyboard(user int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🆕 Новый", newStatusData(user, models.StatusNew)),
			tgbotapi.NewInlineKeyboardButtonData("✅ Выполнена", newStatusData(user, models.StatusDone)),
		),
	)
}

func categoryKeyboard(user int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔴 Важная", newCategoryData(user, models.CategoryImportant)),
			tgbotapi.NewInlineKeyboardButtonData("⚪ Неважная", newCategoryData(user, models.CategoryUnimportant)),
		),
	)
}

// taskListKeyboard renders one button per task for the edit flow.
func taskListKeyboard(tasks []models.Task) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range tasks {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(taskButtonLabel(t), taskData(t.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func taskButtonLabel(t models.Task) string {
	text := t.Text
	runes := []rune(text)
	if len(runes) > 30 {
		text = string(runes[:30]) + "..."
	}
	return fmt.Sprintf("%d. %s %s %s", t.ID, models.StatusGlyph(t.Status), models.CategoryGlyph(t.Category), text)
}

// taskMenuKeyboard is the detail view: toggles for status and category
// plus the way back to the list. The current value keeps its glyph.
func taskMenuKeyboard(t models.Task) tgbotapi.InlineKeyboardMarkup {
	doneLabel := "Выполнена"
	if t.Status == models.StatusDone {
		doneLabel = "✅ Выполнена"
	}
	newLabel := "Новый"
	if t.Status == models.StatusNew {
		newLabel = "🆕 Новый"
	}
	importantLabel := "Важная"
	if t.Category == models.CategoryImportant {
		importantLabel = "🔴 Важная"
	}
	unimportantLabel := "Неважная"
	if t.Category == models.CategoryUnimportant {
		unimportantLabel = "⚪ Неважная"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(doneLabel, statusData(t.ID, models.StatusDone)),
			tgbotapi.NewInlineKeyboardButtonData(newLabel, statusData(t.ID, models.StatusNew)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(importantLabel, categoryData(t.ID, models.CategoryImportant)),
			tgbotapi.NewInlineKeyboardButtonData(unimportantLabel, categoryData(t.ID, models.CategoryUnimportant)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад к списку", backToListData),
		),
	)
}
