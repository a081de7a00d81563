package sheet

import (
	"bytes"
	"encoding/json"

	"github.com/alexanderramin/floatsync/internal/domain"
)

// sheetResponse is the JSON body returned by GET /sheets/{id}.
type sheetResponse struct {
	ID              int64                `json:"id"`
	Name            string               `json:"name"`
	ProjectSettings *projectSettingsJSON `json:"projectSettings"`
	Columns         []columnJSON         `json:"columns"`
	Rows            []rowJSON            `json:"rows"`
}

type projectSettingsJSON struct {
	WorkingDays    []string `json:"workingDays"`
	NonWorkingDays []string `json:"nonWorkingDays"`
	LengthOfDay    float64  `json:"lengthOfDay"`
}

type columnJSON struct {
	ID    int64    `json:"id"`
	Title string   `json:"title"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags"`
}

type rowJSON struct {
	ID        int64      `json:"id"`
	RowNumber int        `json:"rowNumber"`
	Cells     []cellJSON `json:"cells"`
}

type cellJSON struct {
	ColumnID    int64           `json:"columnId"`
	Value       any             `json:"value"`
	ObjectValue json.RawMessage `json:"objectValue"`
	Formula     string          `json:"formula"`
}

type objectValueJSON struct {
	ObjectType   string            `json:"objectType"`
	Predecessors []predecessorJSON `json:"predecessors"`
}

type predecessorJSON struct {
	RowID          int64         `json:"rowId"`
	RowNumber      int           `json:"rowNumber"`
	Type           string        `json:"type"`
	Lag            *durationJSON `json:"lag"`
	InCriticalPath bool          `json:"inCriticalPath"`
	Invalid        bool          `json:"invalid"`
}

type durationJSON struct {
	Days     float64 `json:"days"`
	Negative bool    `json:"negative"`
}

// rowUpdateJSON is one element of the PUT /sheets/{id}/rows body.
type rowUpdateJSON struct {
	ID    int64            `json:"id"`
	Cells []cellUpdateJSON `json:"cells"`
}

type cellUpdateJSON struct {
	ColumnID int64 `json:"columnId"`
	Value    *int  `json:"value"`
}

type resultResponse struct {
	Message    string `json:"message"`
	ResultCode int    `json:"resultCode"`
}

type errorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	RefID     string `json:"refId"`
}

func (r *sheetResponse) toDomain() *domain.Sheet {
	s := &domain.Sheet{
		ID:   r.ID,
		Name: r.Name,
	}
	if r.ProjectSettings != nil {
		s.Settings = domain.ProjectSettings{
			WorkingDays:    r.ProjectSettings.WorkingDays,
			NonWorkingDays: r.ProjectSettings.NonWorkingDays,
		}
	}

	s.Columns = make([]domain.Column, len(r.Columns))
	for i, c := range r.Columns {
		s.Columns[i] = domain.Column{ID: c.ID, Type: c.Type, Tags: c.Tags, Title: c.Title}
	}

	s.Rows = make([]domain.Row, len(r.Rows))
	for i, row := range r.Rows {
		cells := make([]domain.Cell, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = domain.Cell{
				ColumnID:     c.ColumnID,
				Value:        c.Value,
				Predecessors: decodePredecessors(c.ObjectValue),
				Formula:      c.Formula,
			}
		}
		s.Rows[i] = domain.Row{ID: row.ID, RowNumber: row.RowNumber, Cells: cells}
	}
	return s
}

// decodePredecessors returns the structured dependency list carried by a
// cell's objectValue, or nil when the value is absent or not a predecessor list.
func decodePredecessors(raw json.RawMessage) *domain.PredecessorList {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var ov objectValueJSON
	if err := json.Unmarshal(trimmed, &ov); err != nil {
		return nil
	}
	if ov.ObjectType != "PREDECESSOR_LIST" && ov.Predecessors == nil {
		return nil
	}

	list := &domain.PredecessorList{Dependencies: make([]domain.Dependency, 0, len(ov.Predecessors))}
	for _, p := range ov.Predecessors {
		var lag float64
		if p.Lag != nil {
			lag = p.Lag.Days
			if p.Lag.Negative {
				lag = -lag
			}
		}
		list.Dependencies = append(list.Dependencies, domain.Dependency{
			PredecessorRowNumber: p.RowNumber,
			Type:                 domain.ParseDependencyType(p.Type),
			LagDays:              lag,
			InCriticalPath:       p.InCriticalPath,
		})
	}
	return list
}

func toRowUpdates(updates []domain.FloatUpdate) []rowUpdateJSON {
	body := make([]rowUpdateJSON, len(updates))
	for i, u := range updates {
		body[i] = rowUpdateJSON{
			ID:    u.RowID,
			Cells: []cellUpdateJSON{{ColumnID: u.ColumnID, Value: u.Value}},
		}
	}
	return body
}
