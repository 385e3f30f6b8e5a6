package escape

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Messages holds the wording of the text report. Escaped takes the move
// count (%d), Invalid takes the error (%v).
type Messages struct {
	Escaped string
	Trapped string
	Invalid string
}

// Built-in wordings.
var (
	English = Messages{
		Escaped: "Escaped in %d minute(s)!",
		Trapped: "Trapped :-(",
		Invalid: "Invalid maze: %v",
	}
	German = Messages{
		Escaped: "Entkommen in %d Minute(n)!",
		Trapped: "Gefangen :-(",
		Invalid: "Ungültiges Labyrinth: %v",
	}
)

// MessagesFor returns the wording for a language tag ("en" or "de").
func MessagesFor(lang string) (Messages, bool) {
	switch lang {
	case "en", "":
		return English, true
	case "de":
		return German, true
	}
	return Messages{}, false
}

// Line formats one outcome as a text report line, without newline.
func (m Messages) Line(out Outcome) string {
	switch {
	case out.Err != nil:
		return fmt.Sprintf(m.Invalid, out.Err)
	case out.Escaped:
		return fmt.Sprintf(m.Escaped, out.Minutes)
	default:
		return m.Trapped
	}
}

// Report is the JSON form of a run.
type Report struct {
	RunID string       `json:"run_id"`
	Mazes []MazeReport `json:"mazes"`
}

// MazeReport is the JSON form of one Outcome.
type MazeReport struct {
	Index     int    `json:"index"`
	Layers    int    `json:"layers"`
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
	OpenCells int    `json:"open_cells"`
	Escaped   bool   `json:"escaped"`
	Minutes   *int   `json:"minutes,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewReport converts outcomes to a Report. An empty runID gets a new UUID.
func NewReport(runID string, outs []Outcome) Report {
	if runID == "" {
		runID = uuid.NewString()
	}
	r := Report{RunID: runID, Mazes: make([]MazeReport, 0, len(outs))}
	for _, out := range outs {
		mr := MazeReport{
			Index:     out.Index,
			Layers:    out.Dims.Layers,
			Rows:      out.Dims.Rows,
			Columns:   out.Dims.Columns,
			OpenCells: out.OpenCells,
			Escaped:   out.Escaped,
		}
		if out.Escaped {
			minutes := out.Minutes
			mr.Minutes = &minutes
		}
		if out.Err != nil {
			mr.Error = out.Err.Error()
		}
		r.Mazes = append(r.Mazes, mr)
	}
	return r
}

// WriteReport writes outs to w in the configured format.
func WriteReport(w io.Writer, outs []Outcome, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}

	if o.Format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewReport(o.RunID, outs)); err != nil {
			return fmt.Errorf("escape: write report: %w", err)
		}
		return nil
	}

	for _, out := range outs {
		if _, err := fmt.Fprintln(w, o.Messages.Line(out)); err != nil {
			return fmt.Errorf("escape: write report: %w", err)
		}
	}
	return nil
}
