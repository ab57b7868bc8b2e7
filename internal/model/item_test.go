package model

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestFormData_ValidateRejectsBlankFields(t *testing.T) {
	f := FormData{Time: "  ", Task: "Walk", Description: ""}
	err := f.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, ok := errs["time"]; !ok {
		t.Errorf("expected time error, got %v", errs)
	}
	if _, ok := errs["description"]; !ok {
		t.Errorf("expected description error, got %v", errs)
	}
	if _, ok := errs["task"]; ok {
		t.Errorf("task should be valid, got %v", errs["task"])
	}
}

func TestFormData_ValidateAcceptsFilledFields(t *testing.T) {
	f := FormData{Time: "7:00 AM", Task: " Run ", Description: "laps"}
	if err := f.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.Trimmed().Task; got != "Run" {
		t.Errorf("trimmed task = %q, want %q", got, "Run")
	}
}

func TestFormFrom(t *testing.T) {
	it := RoutineItem{ID: "3", Time: "7:00 AM", Task: "Stretch", Description: "Limber up.", Image: "yoga", InsertionOrder: 3}
	f := FormFrom(it)
	if f.Time != it.Time || f.Task != it.Task || f.Description != it.Description {
		t.Fatalf("form = %+v, want fields of %+v", f, it)
	}
}
