package jsonstore

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/dailydeck/internal/model"
)

func TestLoad_AssignsMissingInsertionOrders(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deck.json")
	data := `[
  {"id": "a", "time": "6:00 AM", "task": "Wake", "description": "up", "image": "wakeup", "insertion_order": 4},
  {"id": "b", "time": "7:00 AM", "task": "Run", "description": "go"},
  {"id": " c ", "time": "8:00 AM", "task": "Eat", "description": "food"}
]`
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	items, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[1].InsertionOrder != 5 || items[2].InsertionOrder != 6 {
		t.Fatalf("orders = %d, %d; want 5, 6", items[1].InsertionOrder, items[2].InsertionOrder)
	}
	if items[2].ID != "c" {
		t.Errorf("id = %q, want trimmed %q", items[2].ID, "c")
	}
}

func TestDecode_RejectsBadIDs(t *testing.T) {
	cases := map[string]string{
		"empty":           `[{"id": "", "task": "x"}]`,
		"duplicate":       `[{"id": "1"}, {"id": "1"}]`,
		"syntax":          `[{"id": }]`,
		"duplicate order": `[{"id": "a", "insertion_order": 5}, {"id": "b", "insertion_order": 5}]`,
	}
	for name, in := range cases {
		if _, err := Decode([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDecode_DuplicateInsertionOrder(t *testing.T) {
	_, err := Decode([]byte(`[{"id": "a", "insertion_order": 5}, {"id": "b", "insertion_order": 5}]`))
	if err == nil || !strings.Contains(err.Error(), "item 1: duplicate insertion_order 5") {
		t.Fatalf("expected duplicate order error, got %v", err)
	}

	// Missing orders are assigned, never counted as duplicates.
	items, err := Decode([]byte(`[{"id": "a"}, {"id": "b"}, {"id": "c", "insertion_order": 1}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	seen := map[int]bool{}
	for _, it := range items {
		if seen[it.InsertionOrder] {
			t.Fatalf("orders not unique: %+v", items)
		}
		seen[it.InsertionOrder] = true
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "read file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	items := []model.RoutineItem{{ID: "1", Time: "6:00 AM", Task: "Wake Up", Description: "d", Image: "wakeup", InsertionOrder: 1}}
	if err := Encode(&buf, items); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"id": "1"`, `"insertion_order": 1`, `"task": "Wake Up"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	back, err := Decode(buf.Bytes())
	if err != nil || len(back) != 1 || back[0] != items[0] {
		t.Fatalf("decode(encode) = %+v, %v", back, err)
	}
}
