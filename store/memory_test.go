package store

import (
	"context"
	"testing"

	"zadachnik/models"
)

func TestMemoryStoreListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		if _, err := s.Add(ctx, text, 1, models.StatusNew, models.CategoryUnimportant); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	// another user's task must never show up in user 1's list
	if _, err := s.Add(ctx, "foreign", 2, models.StatusNew, models.CategoryUnimportant); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("List() returned %d tasks, want %d", len(got), len(texts))
	}
	for i, task := range got {
		if task.Text != texts[i] {
			t.Errorf("List()[%d].Text = %q, want %q", i, task.Text, texts[i])
		}
		if task.User != 1 {
			t.Errorf("List()[%d].User = %d, want 1", i, task.User)
		}
		if i > 0 && got[i-1].ID >= task.ID {
			t.Errorf("List() ids not ascending: %d then %d", got[i-1].ID, task.ID)
		}
	}

	empty, err := s.List(ctx, 99)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("List() for unknown user returned %d tasks, want 0", len(empty))
	}
}

func TestMemoryStoreGetHidesForeignTasks(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Add(ctx, "mine", 1, models.StatusNew, models.CategoryUnimportant)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	tests := []struct {
		name string
		id   int64
		user int64
		want bool
	}{
		{name: "owner sees the task", id: id, user: 1, want: true},
		{name: "other user gets absent", id: id, user: 2, want: false},
		{name: "unknown id gets absent", id: id + 100, user: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, tt.id, tt.user)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if ok != tt.want {
				t.Errorf("Get() found = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Add(ctx, "task", 1, models.StatusNew, models.CategoryUnimportant)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	done := models.StatusDone
	if err := s.Update(ctx, id, 1, &done, nil); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	task, ok, err := s.Get(ctx, id, 1)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v after update", ok, err)
	}
	if task.Status != models.StatusDone {
		t.Errorf("Status = %q, want %q", task.Status, models.StatusDone)
	}
	if task.Category != models.CategoryUnimportant {
		t.Errorf("Category changed to %q, want untouched %q", task.Category, models.CategoryUnimportant)
	}
	if task.Text != "task" {
		t.Errorf("Text changed to %q", task.Text)
	}

	// mismatched owner must leave the record as is
	important := models.CategoryImportant
	if err := s.Update(ctx, id, 2, nil, &important); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	task, _, _ = s.Get(ctx, id, 1)
	if task.Category != models.CategoryUnimportant {
		t.Errorf("Category = %q after foreign update, want %q", task.Category, models.CategoryUnimportant)
	}

	// a call with neither field is a no-op
	if err := s.Update(ctx, id, 1, nil, nil); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}
