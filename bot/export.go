package bot

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"zadachnik/models"
)

var csvHeader = []string{"id", "text", "user", "created_at", "status", "category"}

// cmdExport sends the user's tasks as a CSV document. Everything past
// the initial list query is reported to the user as plain text instead
// of propagating.
func (b *Bot) cmdExport(m *tgbotapi.Message) error {
	user := m.From.ID

	tasks, err := b.store.List(context.Background(), user)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return b.replyMain(m.Chat.ID, "У тебя пока нет задач для выгрузки.")
	}

	if err := b.sendTasksCSV(m.Chat.ID, user, tasks); err != nil {
		return b.replyMain(m.Chat.ID, "Произошла ошибка при создании файла: "+err.Error())
	}
	return nil
}

func (b *Bot) sendTasksCSV(chatID, user int64, tasks []models.Task) error {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("tasks_%d_%s.csv", user, uuid.NewString()))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	// the temp file is removed whether or not delivery succeeds
	defer os.Remove(path)

	werr := writeTasksCSV(f, tasks)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return cerr
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = "Вот твои задачи в формате CSV."
	_, err = b.api.Send(doc)
	return err
}

func writeTasksCSV(w io.Writer, tasks []models.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		rec := []string{
			strconv.FormatInt(t.ID, 10),
			t.Text,
			strconv.FormatInt(t.User, 10),
			t.CreatedAt.UTC().Format(time.RFC3339),
			t.Status,
			t.Category,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
