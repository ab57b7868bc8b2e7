package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dailydeck/internal/anim"
	"github.com/idilsaglam/dailydeck/internal/assets"
	"github.com/idilsaglam/dailydeck/internal/model"
)

const (
	maxModalWidth = 48
	minModalWidth = 24
)

// modalWidth is the full-size outer width of the detail modal.
func modalWidth(viewportWidth int) int {
	return min(max(viewportWidth-4, minModalWidth), maxModalWidth)
}

// modalContent renders the inner lines of the detail modal for an outer
// width of width columns.
func modalContent(it model.RoutineItem, img assets.Image, confirming bool, width int) string {
	inner := width - 4 // border + padding
	head := spread(titleStyle.Render(img.Glyph+" "+strings.ToUpper(it.Task)),
		mutedStyle.Render("TIME ")+timeStyle.Render(compactTime(it.Time)), inner)

	lines := []string{
		head,
		mutedStyle.Render(cardNumber(it.ID)),
		"",
		loreStyle.Width(inner).Render(it.Description),
		"",
	}
	if confirming {
		lines = append(lines,
			errorStyle.Render("Transfer "+it.Task+" away?"),
			helpStyle.Render("y: transfer   n/esc: cancel"))
	} else {
		lines = append(lines, helpStyle.Render("e: edit   d: transfer   esc: close"))
	}
	return strings.Join(lines, "\n")
}

// modalBox draws content in a bordered box exactly width x height cells,
// cropping content that does not fit. Boxes too small for a border become
// a solid block.
func modalBox(content string, width, height int) string {
	if width < 4 || height < 3 {
		row := strings.Repeat("▪", max(width, 0))
		rows := make([]string, max(height, 0))
		for i := range rows {
			rows[i] = row
		}
		return strings.Join(rows, "\n")
	}
	body := fitPane(content, width-4, height-2)
	return modalStyle.Width(width - 2).Render(body)
}

// placeModal draws the modal over bg according to tr. The modal centre sits
// at the viewport centre offset by the transform's translation.
func placeModal(bg, content string, fullW, fullH int, tr anim.Transform, vp anim.Viewport) string {
	s := math.Min(math.Max(tr.Scale, 0), 1)
	w := int(math.Round(float64(fullW) * s))
	h := int(math.Round(float64(fullH) * s))
	if w < 1 || h < 1 {
		return bg
	}

	cx, cy := vp.Center()
	x := int(math.Round(cx + tr.TranslateX - float64(w)/2))
	y := int(math.Round(cy + tr.TranslateY - float64(h)/2))
	return overlay(bg, modalBox(content, w, h), x, y)
}

// modalHeight is the outer height of the full-size modal for content.
func modalHeight(content string) int {
	return lipgloss.Height(content) + 2
}
