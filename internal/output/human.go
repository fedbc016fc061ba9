package output

import (
	"fmt"
	"strings"

	"kijilayout/internal/core"
	"kijilayout/internal/report"
)

type humanFormatter struct{}

// FormatLayout renders the full locality-group/family/column tree.
func (humanFormatter) FormatLayout(t *core.TableLayout) (string, error) {
	if t == nil {
		return "", nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "table %s (layoutId=%s, keysFormat=%s)\n", t.Name, t.LayoutID, t.KeysFormat)
	for _, lg := range t.LocalityGroups {
		fmt.Fprintf(&sb, "  locality group %s [id=%d, ttl=%ds, maxVersions=%d, compression=%s]\n",
			lg.PrimaryName, lg.ID, lg.TTLSeconds, lg.MaxVersions, lg.Compression)
		for _, f := range lg.Families {
			switch f.Kind {
			case core.FamilyMap:
				fmt.Fprintf(&sb, "    family %s [id=%d, kind=MAP, schema=%s]\n", f.PrimaryName, f.ID, f.MapSchema.Type)
			default:
				fmt.Fprintf(&sb, "    family %s [id=%d, kind=GROUP]\n", f.PrimaryName, f.ID)
				for _, c := range f.Columns {
					fmt.Fprintf(&sb, "      column %s [id=%d, schema=%s, storage=%s]\n", c.PrimaryName, c.ID, c.Schema.Type, c.Schema.Storage)
				}
			}
		}
	}
	return sb.String(), nil
}

// FormatReport renders the change report as grouped +/~/- lines.
func (humanFormatter) FormatReport(r *report.Report) (string, error) {
	if r == nil || r.IsEmpty() {
		return "No changes detected.\n", nil
	}
	var sb strings.Builder
	for _, c := range r.AddedLocalityGroups {
		fmt.Fprintf(&sb, "+ locality group %s [id=%d]\n", c.Name, c.NewID)
	}
	for _, c := range r.RenamedLocalityGroups {
		fmt.Fprintf(&sb, "~ locality group renamed to %s [id=%d]\n", c.Name, c.NewID)
	}
	for _, c := range r.DeletedLocalityGroups {
		fmt.Fprintf(&sb, "- locality group %s [id=%d]\n", c.Name, c.OldID)
	}
	for _, c := range r.AddedFamilies {
		fmt.Fprintf(&sb, "+ family %s.%s [id=%d]\n", c.LocalityGroup, c.Name, c.NewID)
	}
	for _, c := range r.RenamedFamilies {
		fmt.Fprintf(&sb, "~ family %s.%s renamed [id=%d]\n", c.LocalityGroup, c.Name, c.NewID)
	}
	for _, c := range r.DeletedFamilies {
		fmt.Fprintf(&sb, "- family %s.%s [id=%d]\n", c.LocalityGroup, c.Name, c.OldID)
	}
	for _, c := range r.AddedColumns {
		fmt.Fprintf(&sb, "+ column %s.%s [id=%d]\n", c.Family, c.Name, c.NewID)
	}
	for _, c := range r.RenamedColumns {
		fmt.Fprintf(&sb, "~ column %s.%s renamed [id=%d]\n", c.Family, c.Name, c.NewID)
	}
	for _, c := range r.DeletedColumns {
		fmt.Fprintf(&sb, "- column %s.%s [id=%d]\n", c.Family, c.Name, c.OldID)
	}
	return sb.String(), nil
}
