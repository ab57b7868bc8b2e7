package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idilsaglam/dailydeck/internal/model"
)

// JSON deck files. Read once to seed the in-memory store and written only to
// stdout by `deck ls --json`; the running deck is never saved back.

// Load reads a deck file. Items without an insertion order get one after the
// largest order in the file, in file order.
func Load(path string) ([]model.RoutineItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(b)
}

// Decode parses a JSON deck and checks that ids and explicit insertion
// orders are unique.
func Decode(b []byte) ([]model.RoutineItem, error) {
	var items []model.RoutineItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	seen := make(map[string]bool, len(items))
	seenOrder := make(map[int]bool, len(items))
	maxOrder := 0
	for i, it := range items {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			return nil, fmt.Errorf("item %d: empty id", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, id)
		}
		seen[id] = true
		items[i].ID = id
		if it.InsertionOrder > 0 {
			if seenOrder[it.InsertionOrder] {
				return nil, fmt.Errorf("item %d: duplicate insertion_order %d", i, it.InsertionOrder)
			}
			seenOrder[it.InsertionOrder] = true
		}
		if it.InsertionOrder > maxOrder {
			maxOrder = it.InsertionOrder
		}
	}
	for i := range items {
		if items[i].InsertionOrder <= 0 {
			maxOrder++
			items[i].InsertionOrder = maxOrder
		}
	}
	return items, nil
}

// Encode writes items as indented JSON.
func Encode(w io.Writer, items []model.RoutineItem) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
