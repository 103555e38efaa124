package services

import (
	"errors"
	"testing"
)

func TestTaskToggleInvolution(t *testing.T) {
	db := newTestDB(t)
	job := seedJob(t, db, "Z-300")
	svc := NewTaskService(db)
	task, err := svc.Add(TaskInput{JobID: job.ID, TaskName: "Obrousit"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.IsCompleted {
		t.Fatalf("new task should start incomplete")
	}
	once, err := svc.Toggle(task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !once.IsCompleted {
		t.Fatalf("expected completed after first toggle")
	}
	twice, err := svc.Toggle(task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if twice.IsCompleted {
		t.Fatalf("expected original state after second toggle")
	}
}

func TestTaskToggleNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	if _, err := svc.Toggle(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestTaskAddRequiresJobAndName(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(db)
	if _, err := svc.Add(TaskInput{JobID: 77, TaskName: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
	job := seedJob(t, db, "Z-301")
	if _, err := svc.Add(TaskInput{JobID: job.ID}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation got %v", err)
	}
}
