package models

import "time"

// Conversation stages of the task-creation flow. A user with no session
// is idle.
const (
	StageAwaitingText      = "awaiting_task_text"
	StageSelectingStatus   = "selecting_status"
	StageSelectingCategory = "selecting_category"
)

// Draft is the not-yet-persisted task accumulated between stages.
type Draft struct {
	Text   string
	Status string
}

// Session struct for storing per-user conversation state
type Session struct {
	Stage     string
	Draft     Draft
	UpdatedAt time.Time
}
