package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"zadachnik/models"
)

// Callback payloads stay underscore-joined tokens on the wire, but all
// decoding goes through parseCallback, which returns a typed action and
// fails closed: anything malformed or unknown is an error, never a
// partial parse.

type actionKind int

const (
	actionSelectTask actionKind = iota
	actionSetStatus
	actionSetCategory
	actionNewStatus
	actionNewCategory
	actionBackToList
)

type callbackAction struct {
	Kind  actionKind
	Task  int64  // actionSelectTask, actionSetStatus, actionSetCategory
	User  int64  // actionNewStatus, actionNewCategory: originating user
	Value string // chosen status or category
}

var errBadCallback = errors.New("malformed callback data")

func taskData(id int64) string {
	return fmt.Sprintf("task_%d", id)
}

func statusData(id int64, status string) string {
	return fmt.Sprintf("status_%d_%s", id, status)
}

func categoryData(id int64, category string) string {
	return fmt.Sprintf("category_%d_%s", id, category)
}

func newStatusData(user int64, status string) string {
	return fmt.Sprintf("newstatus_%d_%s", user, status)
}

func newCategoryData(user int64, category string) string {
	return fmt.Sprintf("newcat_%d_%s", user, category)
}

const backToListData = "back_to_list"

func parseCallback(data string) (callbackAction, error) {
	if data == backToListData {
		return callbackAction{Kind: actionBackToList}, nil
	}

	parts := strings.Split(data, "_")

	switch parts[0] {
	case "task":
		if len(parts) != 2 {
			return callbackAction{}, errBadCallback
		}
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return callbackAction{}, errBadCallback
		}
		return callbackAction{Kind: actionSelectTask, Task: id}, nil

	case "status", "category":
		if len(parts) != 3 {
			return callbackAction{}, errBadCallback
		}
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return callbackAction{}, errBadCallback
		}
		if parts[0] == "status" {
			if !models.ValidStatus(parts[2]) {
				return callbackAction{}, errBadCallback
			}
			return callbackAction{Kind: actionSetStatus, Task: id, Value: parts[2]}, nil
		}
		if !models.ValidCategory(parts[2]) {
			return callbackAction{}, errBadCallback
		}
		return callbackAction{Kind: actionSetCategory, Task: id, Value: parts[2]}, nil

	case "newstatus", "newcat":
		if len(parts) != 3 {
			return callbackAction{}, errBadCallback
		}
		user, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return callbackAction{}, errBadCallback
		}
		if parts[0] == "newstatus" {
			if !models.ValidStatus(parts[2]) {
				return callbackAction{}, errBadCallback
			}
			return callbackAction{Kind: actionNewStatus, User: user, Value: parts[2]}, nil
		}
		if !models.ValidCategory(parts[2]) {
			return callbackAction{}, errBadCallback
		}
		return callbackAction{Kind: actionNewCategory, User: user, Value: parts[2]}, nil
	}

	return callbackAction{}, errBadCallback
}
