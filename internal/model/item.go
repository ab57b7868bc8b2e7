package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RoutineItem is one entry of the daily deck.
// ID and InsertionOrder are assigned once by the store and never change.
type RoutineItem struct {
	ID             string `json:"id"`
	Time           string `json:"time"`
	Task           string `json:"task"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	InsertionOrder int    `json:"insertion_order"`
}

// FormData is the transient edit buffer behind the create/edit form.
type FormData struct {
	Time        string `json:"time"`
	Task        string `json:"task"`
	Description string `json:"description"`
}

// FormFrom fills a form buffer from an existing item.
func FormFrom(it RoutineItem) FormData {
	return FormData{Time: it.Time, Task: it.Task, Description: it.Description}
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f FormData) Trimmed() FormData {
	return FormData{
		Time:        strings.TrimSpace(f.Time),
		Task:        strings.TrimSpace(f.Task),
		Description: strings.TrimSpace(f.Description),
	}
}

// Validate reports every field that is empty after trimming.
// The returned error is a validation.Errors keyed by json field name.
func (f FormData) Validate() error {
	t := f.Trimmed()
	return validation.ValidateStruct(&t,
		validation.Field(&t.Time, validation.Required),
		validation.Field(&t.Task, validation.Required),
		validation.Field(&t.Description, validation.Required),
	)
}
