package bot

import (
	"errors"
	"strings"
)

// telegram rejects messages longer than this anyway
const maxTaskTextLen = 4096

func validateTaskText(text string) error {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return errors.New("task text must not be empty")
	}
	if len(text) > maxTaskTextLen {
		return errors.New("task text is too long")
	}
	return nil
}
