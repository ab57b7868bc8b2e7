package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/dailydeck/internal/store/jsonstore"
	"github.com/idilsaglam/dailydeck/internal/ui"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme("classic") })
	var out, errb bytes.Buffer
	args = append([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "--theme", "mono"}, args...)
	code = Run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestList_FlatPanel(t *testing.T) {
	code, out, errOut := run(t, "ls")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.HasPrefix(out, "+") || !strings.Contains(out, "| Daily Deck  Tasks 12") {
		t.Fatalf("unexpected panel:\n%s", out)
	}
	if strings.Index(out, "Wake Up") > strings.Index(out, "Sleep") {
		t.Fatal("deck not in time order")
	}
}

func TestList_JSONFollowsDisplayOrder(t *testing.T) {
	seed := writeFile(t, "deck.json", `[
  {"id": "a", "time": "10:00 PM", "task": "Sleep", "description": "zzz", "image": "sleep", "insertion_order": 1},
  {"id": "b", "time": "6:00 AM", "task": "Wake Up", "description": "up", "image": "wakeup", "insertion_order": 2},
  {"id": "c", "time": "whenever", "task": "Read", "description": "a book", "image": "study", "insertion_order": 3}
]`)
	code, out, errOut := run(t, "--seed", seed, "ls", "--json")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	items, err := jsonstore.Decode([]byte(out))
	if err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	var got []string
	for _, it := range items {
		got = append(got, it.ID)
	}
	if strings.Join(got, ",") != "b,a,c" {
		t.Fatalf("order = %v, want [b a c]", got)
	}
}

func TestList_Grouped(t *testing.T) {
	seed := writeFile(t, "deck.json", `[
  {"id": "1", "time": "6:00 AM", "task": "Wake Up", "description": "up"},
  {"id": "2", "time": "soon", "task": "Read", "description": "a book"}
]`)
	code, out, errOut := run(t, "--seed", seed, "ls", "--group")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, want := range []string{"Morning", "Afternoon", "(none)", "Evening", "Unscheduled"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Wake Up") > strings.Index(out, "Afternoon") {
		t.Error("morning task listed after the afternoon heading")
	}
	if strings.Index(out, "Read") < strings.Index(out, "Unscheduled") {
		t.Error("unparseable time not listed as unscheduled")
	}
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"version", []string{"version"}, 0},
		{"unknown subcommand", []string{"bogus"}, 2},
		{"unknown flag", []string{"ls", "--nope"}, 2},
		{"extra argument", []string{"ls", "extra"}, 2},
		{"bad theme", []string{"--theme", "sepia", "ls"}, 2},
		{"missing seed", []string{"--seed", "/does/not/exist.json", "ls"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, tt.args...)
			if code != tt.want {
				t.Fatalf("exit = %d, want %d (stderr: %s)", code, tt.want, errOut)
			}
			if code != 0 && !strings.Contains(errOut, "✖") {
				t.Errorf("stderr has no failure line: %q", errOut)
			}
		})
	}
}

func TestRun_InvalidConfigFile(t *testing.T) {
	cfg := writeFile(t, "deck.yaml", "animation:\n  fps: 0\n")
	var out, errb bytes.Buffer
	t.Cleanup(func() { ui.SetTheme("classic") })
	if code := Run([]string{"--config", cfg, "ls"}, &out, &errb); code != 1 {
		t.Fatalf("exit = %d, want 1 (stderr: %s)", code, errb.String())
	}
	if !strings.Contains(errb.String(), "config validation failed") {
		t.Fatalf("stderr = %q", errb.String())
	}
}

func TestSongs_ResolvesFromConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Route 1.mp3"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DECK_TEST_AUDIO", dir)
	cfg := writeFile(t, "deck.yaml", "ui:\n  theme: mono\nassets:\n  audio_dir: ${DECK_TEST_AUDIO}\n")

	var out, errb bytes.Buffer
	t.Cleanup(func() { ui.SetTheme("classic") })
	if code := Run([]string{"--config", cfg, "songs"}, &out, &errb); code != 0 {
		t.Fatalf("exit %d: %s", code, errb.String())
	}
	if !strings.Contains(out.String(), "Found 1/10") {
		t.Fatalf("songs output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Route 1 ✔") || !strings.Contains(out.String(), "Pallet Town missing") {
		t.Fatalf("track status not shown:\n%s", out.String())
	}
	if !strings.Contains(errb.String(), "audio track unavailable") {
		t.Fatalf("missing tracks not logged: %q", errb.String())
	}
}

func TestList_NormalisesClockLabels(t *testing.T) {
	seed := writeFile(t, "deck.json", `[
  {"id": "1", "time": "6:00am", "task": "Wake Up", "description": "up"},
  {"id": "2", "time": "10:30 pm", "task": "Sleep", "description": "zzz"},
  {"id": "3", "time": "whenever", "task": "Read", "description": "a book"}
]`)
	code, out, errOut := run(t, "--seed", seed, "ls")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, want := range []string{" 6:00 AM", "10:30 PM", "whenever"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "6:00am") {
		t.Errorf("raw label printed:\n%s", out)
	}
}

func TestClockLabel(t *testing.T) {
	tests := map[string]string{
		"6:00am":   "6:00 AM",
		"12:05 pm": "12:05 PM",
		"18:00":    "18:00",
		"":         "",
	}
	for in, want := range tests {
		if got := clockLabel(in); got != want {
			t.Errorf("clockLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRun_DuplicateInsertionOrderSeed(t *testing.T) {
	seed := writeFile(t, "deck.json", `[
  {"id": "a", "time": "6:00 AM", "task": "A", "description": "a", "insertion_order": 5},
  {"id": "b", "time": "6:00 AM", "task": "B", "description": "b", "insertion_order": 5}
]`)
	code, _, errOut := run(t, "--seed", seed, "ls")
	if code != 1 || !strings.Contains(errOut, "duplicate insertion_order 5") {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
}

func TestSongs_NoDirectoryLogsOnce(t *testing.T) {
	code, out, errOut := run(t, "songs")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "Found 0/10") {
		t.Fatalf("songs output:\n%s", out)
	}
	if n := strings.Count(errOut, "WARN"); n != 1 || !strings.Contains(errOut, "no audio directory configured") {
		t.Fatalf("stderr = %q", errOut)
	}
}
