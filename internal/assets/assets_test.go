package assets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLookupImage_FallsBackToDefault(t *testing.T) {
	img, err := LookupImage("lunch")
	if err != nil || img.Name != "lunch" {
		t.Fatalf("lunch = %+v, %v", img, err)
	}

	img, err = LookupImage("missing")
	if img.Name != DefaultImage {
		t.Fatalf("fallback = %q, want %q", img.Name, DefaultImage)
	}
	var ae *AssetLoadError
	if !errors.As(err, &ae) || ae.Ref != "missing" {
		t.Fatalf("expected AssetLoadError for missing, got %v", err)
	}
}

func TestCatalog_LogsOncePerReference(t *testing.T) {
	var buf bytes.Buffer
	c := NewCatalog(log.New(&buf))
	for i := 0; i < 3; i++ {
		if img := c.Image("ghost"); img.Name != DefaultImage {
			t.Fatalf("image = %q, want default", img.Name)
		}
	}
	if n := strings.Count(buf.String(), "using default image"); n != 1 {
		t.Fatalf("warnings = %d, want 1:\n%s", n, buf.String())
	}
	c.Image("sleep")
	if n := strings.Count(buf.String(), "using default image"); n != 1 {
		t.Fatalf("known image should not warn:\n%s", buf.String())
	}
}

func TestTracks_ResolvesAndRecovers(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Route 1.mp3"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var buf bytes.Buffer
	tracks := Tracks(dir, log.New(&buf))
	if len(tracks) != 10 {
		t.Fatalf("tracks = %d, want 10", len(tracks))
	}
	for _, tr := range tracks {
		if tr.ID == 2 {
			if tr.Path != filepath.Join(dir, "Route 1.mp3") {
				t.Errorf("route 1 path = %q", tr.Path)
			}
			continue
		}
		if tr.Path != "" {
			t.Errorf("track %d should be unresolved, got %q", tr.ID, tr.Path)
		}
	}
	if n := strings.Count(buf.String(), "audio track unavailable"); n != 9 {
		t.Fatalf("warnings = %d, want 9", n)
	}
}

func TestTracks_NoDirectory(t *testing.T) {
	for _, tr := range Tracks("", nil) {
		if tr.Path != "" {
			t.Fatalf("track %d resolved without a directory", tr.ID)
		}
	}
}

func TestTracks_NoDirectoryWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	Tracks("", log.New(&buf))
	out := buf.String()
	if n := strings.Count(out, "no audio directory configured"); n != 1 {
		t.Fatalf("summary warnings = %d, want 1:\n%s", n, out)
	}
	if strings.Contains(out, "audio track unavailable") {
		t.Fatalf("per-track warnings logged at the default level:\n%s", out)
	}

	buf.Reset()
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)
	Tracks("", l)
	if n := strings.Count(buf.String(), "audio track unavailable"); n != 10 {
		t.Fatalf("debug records = %d, want 10", n)
	}
}
