// Package provdef writes the province definition table: one row per
// extracted shape naming its unique color, a human-readable name, and its
// land/sea/lake classification. The schema (id,r,g,b,name,x,type,coastal)
// follows the well-known Paradox-style definition.csv shape.
//
// Marshaling goes through github.com/gocarina/gocsv, a struct-tag driven
// CSV library.
package provdef

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/shapeforge/provincegrid/pixel"
	"github.com/shapeforge/provincegrid/shape"
)

// Row is one line of the definition table.
type Row struct {
	ID      int    `csv:"id"`
	R       uint8  `csv:"r"`
	G       uint8  `csv:"g"`
	B       uint8  `csv:"b"`
	Name    string `csv:"name"`
	X       int    `csv:"x"`
	Type    string `csv:"type"`
	Coastal bool   `csv:"coastal"`
}

// BuildRows converts a ShapeList into definition-table rows, 1-indexed by
// discovery order, classifying each shape's source color through assigner
// and naming it generically ("Province N") — a real mod would overwrite
// Name from a separate localization pass, out of this package's scope.
func BuildRows(list shape.List, assigner pixel.ColorAssigner) []*Row {
	rows := make([]*Row, 0, len(list))
	for i, s := range list {
		class := assigner.Classify(s.SourceColor)
		rows = append(rows, &Row{
			ID:      i + 1,
			R:       s.UniqueColor.R,
			G:       s.UniqueColor.G,
			B:       s.UniqueColor.B,
			Name:    fmt.Sprintf("Province %d", i+1),
			X:       -1,
			Type:    class.String(),
			Coastal: class == pixel.Sea || class == pixel.Lake,
		})
	}
	return rows
}

// WriteTable marshals rows as CSV (with a header row) to w.
func WriteTable(w io.Writer, rows []*Row) error {
	out, err := gocsv.MarshalString(rows)
	if err != nil {
		return fmt.Errorf("provdef: marshal: %w", err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("provdef: write: %w", err)
	}
	return nil
}
