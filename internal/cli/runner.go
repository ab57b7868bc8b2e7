package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/dailydeck/internal/assets"
	"github.com/idilsaglam/dailydeck/internal/model"
	"github.com/idilsaglam/dailydeck/internal/store"
	"github.com/idilsaglam/dailydeck/internal/store/jsonstore"
	"github.com/idilsaglam/dailydeck/internal/ui"
)

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, ui.C(ui.Current().Muted, "Hint: run `deck --help` for usage"))
		return 2
	}
	return 1
}

// -------------- subcommands ----------------

func newListCmd(app *App) *cobra.Command {
	var asJSON, group bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "Print the deck in time order",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore(app.log)
			if err != nil {
				return err
			}
			items := st.List()
			if asJSON {
				return jsonstore.Encode(cmd.OutOrStdout(), items)
			}
			next, _ := st.Next(app.now())
			printDeck(cmd.OutOrStdout(), items, next.ID, group, app.now())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the deck as JSON")
	cmd.Flags().BoolVarP(&group, "group", "g", false, "Group by part of day")
	return cmd
}

func newSongsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "songs",
		Short: "List the soundtrack and which files were found",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracks := assets.Tracks(app.cfg.Assets.AudioDir, app.log)
			printTracks(cmd.OutOrStdout(), tracks)
			return nil
		},
	}
}

// -------------- rendering helpers --------------

func printDeck(w io.Writer, items []model.RoutineItem, nextID string, group bool, now time.Time) {
	t := ui.Current()
	nextLabel := ui.C(t.Muted, "done for today")
	for _, it := range items {
		if it.ID == nextID {
			nextLabel = it.Task + " " + ui.C(t.Time, clockLabel(it.Time))
		}
	}
	header := fmt.Sprintf("%s  %s %d  %s %s",
		ui.C(t.Title, "Daily Deck"),
		ui.C(t.Accent, "Tasks"), len(items),
		ui.C(t.Accent, "Next"), nextLabel,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.DayBar(store.MinuteOfDay(now), 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(items, nextID)...)
	} else {
		lines = append(lines, flatLines(items, nextID)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: run `deck` to open the interactive deck"))
	ui.Panel(w, lines)
}

func flatLines(items []model.RoutineItem, nextID string) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no tasks")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		mark := " "
		if it.ID == nextID {
			mark = ui.C(t.Accent, t.Marker)
		}
		task := ansi.Truncate(it.Task, 24, "…")
		lore := ansi.Truncate(it.Description, 40, "…")
		out = append(out, fmt.Sprintf("%s %s %s  %-24s %s",
			mark,
			ui.C(t.Muted, fmt.Sprintf("%3s.", it.ID)),
			ui.C(t.Time, fmt.Sprintf("%8s", clockLabel(it.Time))),
			task,
			ui.C(t.Muted, lore)))
	}
	return out
}

// clockLabel prints parsed times in one canonical form ("6:00am" becomes
// "6:00 AM") and leaves anything else as typed.
func clockLabel(label string) string {
	if m, ok := store.ParseClock(label); ok {
		return store.FormatClock(m)
	}
	return label
}

// Parts of the day used by `ls --group`. Items whose time does not parse
// are listed as unscheduled.
var dayParts = []struct {
	name     string
	from, to int
}{
	{"Morning", 0, 12 * 60},
	{"Afternoon", 12 * 60, 17 * 60},
	{"Evening", 17 * 60, 24 * 60},
}

func groupLines(items []model.RoutineItem, nextID string) []string {
	t := ui.Current()
	buckets := make([][]model.RoutineItem, len(dayParts))
	var unscheduled []model.RoutineItem
	for _, it := range items {
		m, ok := store.ParseClock(it.Time)
		if !ok {
			unscheduled = append(unscheduled, it)
			continue
		}
		for i, p := range dayParts {
			if m >= p.from && m < p.to {
				buckets[i] = append(buckets[i], it)
				break
			}
		}
	}

	var lines []string
	for i, p := range dayParts {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.C(t.Accent, p.name))
		if len(buckets[i]) == 0 {
			lines = append(lines, ui.C(t.Muted, "(none)"))
		} else {
			lines = append(lines, flatLines(buckets[i], nextID)...)
		}
	}
	if len(unscheduled) > 0 {
		lines = append(lines, "", ui.C(t.Accent, "Unscheduled"))
		lines = append(lines, flatLines(unscheduled, nextID)...)
	}
	return lines
}

func printTracks(w io.Writer, tracks []assets.Track) {
	t := ui.Current()
	found := 0
	for _, tr := range tracks {
		if tr.Path != "" {
			found++
		}
	}

	lines := []string{
		fmt.Sprintf("%s  %s %d/%d", ui.C(t.Title, "Soundtrack"), ui.C(t.Accent, "Found"), found, len(tracks)),
		"",
	}
	for _, tr := range tracks {
		status := ui.C(t.Success, "✔")
		if tr.Path == "" {
			status = ui.C(t.Muted, "missing")
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			ui.C(t.Muted, fmt.Sprintf("%2d.", tr.ID)), tr.Title, status))
	}
	if found < len(tracks) {
		lines = append(lines, "", ui.C(t.Muted, "Tip: set assets.audio_dir in deck.yaml"))
	}
	ui.Panel(w, lines)
}
