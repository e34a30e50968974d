package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/string16/internal/core/domain"
	"go.trai.ch/string16/internal/ui/output"
	"go.trai.ch/string16/internal/ui/style"
)

// unitLimit caps the hex units printed per input.
const unitLimit = 64

// report renders inspections as titled key/value blocks.
type report struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

func newReport(w io.Writer) *report {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	return &report{w: w, renderer: r}
}

func (r *report) write(inspections ...domain.Inspection) {
	for i, insp := range inspections {
		if i > 0 {
			_, _ = fmt.Fprintln(r.w)
		}
		_, _ = fmt.Fprintln(r.w, style.Title.Renderer(r.renderer).Render(insp.Source))
		r.row("len", strconv.Itoa(insp.Len()))
		r.row("units", insp.Units(unitLimit))
		r.row("hash", fmt.Sprintf("0x%016x", insp.Hash()))
		r.row("fingerprint", fmt.Sprintf("0x%016x", insp.Fingerprint()))
		r.row("utf8", strconv.Quote(insp.UTF8()))
	}
}

func (r *report) row(key, value string) {
	_, _ = fmt.Fprintln(r.w,
		style.Key.Renderer(r.renderer).Render(key)+
			style.Value.Renderer(r.renderer).Render(value))
}
