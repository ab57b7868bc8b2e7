package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Track is one entry of the soundtrack.
type Track struct {
	ID    int
	Title string
	File  string
	// Path is the resolved file, empty when the file could not be found.
	Path string
}

var soundtrack = []Track{
	{ID: 1, Title: "Title Screen", File: "Title Screen.mp3"},
	{ID: 2, Title: "Route 1", File: "Route 1.mp3"},
	{ID: 3, Title: "Opening Movie", File: "Opening Movie.mp3"},
	{ID: 4, Title: "Pallet Town", File: "Pallet Town.mp3"},
	{ID: 5, Title: "Pokemon Center", File: "Pokemon Center.mp3"},
	{ID: 6, Title: "Pokemon Gym", File: "Pokemon Gym.mp3"},
	{ID: 7, Title: "Viridian City", File: "Viridian City.mp3"},
	{ID: 8, Title: "Victory Road", File: "Victory Road.mp3"},
	{ID: 9, Title: "Ending Theme", File: "Ending Theme.mp3"},
	{ID: 10, Title: "Littleroot Town", File: "LittlerootTown.mp3"},
}

// Tracks resolves every soundtrack file under dir. Missing files are logged
// and returned with an empty Path. Without a dir nothing can resolve, so a
// single warning is logged and the per-track errors go to debug.
func Tracks(dir string, l *log.Logger) []Track {
	if l == nil {
		l = log.New(io.Discard)
	}
	if dir == "" {
		l.Warn("no audio directory configured", "tracks", len(soundtrack))
	}
	out := make([]Track, 0, len(soundtrack))
	for _, tr := range soundtrack {
		p, err := resolveTrack(dir, tr.File)
		if err != nil {
			if dir == "" {
				l.Debug("audio track unavailable", "id", tr.ID, "title", tr.Title, "err", err)
			} else {
				l.Warn("audio track unavailable", "id", tr.ID, "title", tr.Title, "err", err)
			}
		} else {
			tr.Path = p
		}
		out = append(out, tr)
	}
	return out
}

func resolveTrack(dir, file string) (string, error) {
	if dir == "" {
		return "", &AssetLoadError{Kind: "audio", Ref: file, Err: fmt.Errorf("no audio directory configured")}
	}
	p := filepath.Join(dir, file)
	fi, err := os.Stat(p)
	if err != nil {
		return "", &AssetLoadError{Kind: "audio", Ref: file, Err: err}
	}
	if fi.IsDir() {
		return "", &AssetLoadError{Kind: "audio", Ref: file, Err: fmt.Errorf("is a directory")}
	}
	return p, nil
}
