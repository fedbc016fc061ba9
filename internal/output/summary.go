package output

import (
	"fmt"
	"strings"

	"kijilayout/internal/core"
	"kijilayout/internal/report"
)

type summaryFormatter struct{}

// FormatLayout formats a table layout as a compact structural summary.
func (summaryFormatter) FormatLayout(t *core.TableLayout) (string, error) {
	if t == nil {
		return "No layout.\n", nil
	}

	families := 0
	columns := 0
	for _, lg := range t.LocalityGroups {
		families += len(lg.Families)
		for _, f := range lg.Families {
			columns += len(f.Columns)
		}
	}

	var sb strings.Builder
	sb.WriteString("Table Layout Summary\n")
	sb.WriteString("=====================\n\n")
	fmt.Fprintf(&sb, "Table:           %s\n", t.Name)
	fmt.Fprintf(&sb, "Layout ID:       %s\n", t.LayoutID)
	fmt.Fprintf(&sb, "Keys format:     %s\n", t.KeysFormat)
	fmt.Fprintf(&sb, "Locality groups: %d\n", len(t.LocalityGroups))
	fmt.Fprintf(&sb, "Families:        %d\n", families)
	fmt.Fprintf(&sb, "Columns:         %d\n", columns)
	return sb.String(), nil
}

// FormatReport formats a change report as a compact +/~/- summary.
//
//	Locality groups: +1, ~0, -0
//	Families:        +2, ~1, -0
//	Columns:         +5, ~2, -1
func (summaryFormatter) FormatReport(r *report.Report) (string, error) {
	if r == nil || r.IsEmpty() {
		return "No changes detected.\n", nil
	}

	var sb strings.Builder
	sb.WriteString("Layout Change Summary\n")
	sb.WriteString("======================\n\n")
	fmt.Fprintf(&sb, "Locality groups: +%d, ~%d, -%d\n",
		len(r.AddedLocalityGroups), len(r.RenamedLocalityGroups), len(r.DeletedLocalityGroups))
	fmt.Fprintf(&sb, "Families:        +%d, ~%d, -%d\n",
		len(r.AddedFamilies), len(r.RenamedFamilies), len(r.DeletedFamilies))
	fmt.Fprintf(&sb, "Columns:         +%d, ~%d, -%d\n",
		len(r.AddedColumns), len(r.RenamedColumns), len(r.DeletedColumns))
	return sb.String(), nil
}
