package output

import (
	"encoding/json"

	"kijilayout/internal/core"
	"kijilayout/internal/report"
)

type jsonFormatter struct{}

type layoutPayload struct {
	Format   string            `json:"format"`
	Name     string            `json:"name"`
	LayoutID string            `json:"layoutId"`
	Layout   *core.TableLayout `json:"layout,omitempty"`
}

type reportSummary struct {
	AddedLocalityGroups   int `json:"addedLocalityGroups"`
	RenamedLocalityGroups int `json:"renamedLocalityGroups"`
	DeletedLocalityGroups int `json:"deletedLocalityGroups"`
	AddedFamilies         int `json:"addedFamilies"`
	RenamedFamilies       int `json:"renamedFamilies"`
	DeletedFamilies       int `json:"deletedFamilies"`
	AddedColumns          int `json:"addedColumns"`
	RenamedColumns        int `json:"renamedColumns"`
	DeletedColumns        int `json:"deletedColumns"`
}

type reportPayload struct {
	Format  string         `json:"format"`
	Summary reportSummary  `json:"summary"`
	Report  *report.Report `json:"report,omitempty"`
}

func (jsonFormatter) FormatLayout(t *core.TableLayout) (string, error) {
	payload := layoutPayload{Format: string(FormatJSON)}
	if t != nil {
		payload.Name = t.Name
		payload.LayoutID = t.LayoutID
		payload.Layout = t
	}
	return marshalJSON(payload)
}

func (jsonFormatter) FormatReport(r *report.Report) (string, error) {
	payload := reportPayload{Format: string(FormatJSON)}
	if r != nil {
		payload.Report = r
		payload.Summary = reportSummary{
			AddedLocalityGroups:   len(r.AddedLocalityGroups),
			RenamedLocalityGroups: len(r.RenamedLocalityGroups),
			DeletedLocalityGroups: len(r.DeletedLocalityGroups),
			AddedFamilies:         len(r.AddedFamilies),
			RenamedFamilies:       len(r.RenamedFamilies),
			DeletedFamilies:       len(r.DeletedFamilies),
			AddedColumns:          len(r.AddedColumns),
			RenamedColumns:        len(r.RenamedColumns),
			DeletedColumns:        len(r.DeletedColumns),
		}
	}
	return marshalJSON(payload)
}

func marshalJSON[T layoutPayload | reportPayload](payload T) (string, error) {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
