package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color styles shared by the renderers
var (
	successStyle  = color.New(color.FgGreen)
	warningStyle  = color.New(color.FgYellow)
	errorStyle    = color.New(color.FgRed)
	headerStyle   = color.New(color.Bold, color.FgHiWhite)
	addressStyle  = color.New(color.FgWhite)
	pathStyle     = color.New(color.Faint)
	identityStyle = color.New(color.FgCyan, color.Bold)
	networkStyle  = color.New(color.BgCyan, color.FgBlack)
)

var titleCaser = cases.Title(language.English)

// paint applies style only when colored output is enabled
func paint(enabled bool, style *color.Color, s string) string {
	if !enabled {
		return s
	}
	return style.Sprint(s)
}

// WriteJSON writes v as indented JSON followed by a newline
func WriteJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
