package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/fieldplot/internal/ode"
)

type ExportData struct {
	ID           string         `json:"id"`
	Field        string         `json:"field"`
	Step         float64        `json:"step"`
	YSpread      float64        `json:"y_spread"`
	StartX       float64        `json:"start_x"`
	MaxX         *float64       `json:"max_x,omitempty"`
	MaxAbsY      *float64       `json:"max_abs_y,omitempty"`
	Points       int            `json:"points"`
	Trajectories [][][2]float64 `json:"trajectories"`
}

// ExportJSON writes a stored run as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, trajs []ode.Trajectory) error {
	data := ExportData{
		ID:           meta.ID,
		Field:        meta.Field,
		Step:         meta.Step,
		YSpread:      meta.YSpread,
		StartX:       meta.StartX,
		MaxX:         meta.MaxX,
		MaxAbsY:      meta.MaxAbsY,
		Points:       ode.TotalPoints(trajs),
		Trajectories: make([][][2]float64, len(trajs)),
	}

	for i, tr := range trajs {
		pts := make([][2]float64, len(tr))
		for j, p := range tr {
			pts[j] = [2]float64{p.X, p.Y}
		}
		data.Trajectories[i] = pts
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a stored run's points as traj,x,y rows.
func ExportCSV(w io.Writer, trajs []ode.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"traj", "x", "y"}); err != nil {
		return err
	}
	for i, tr := range trajs {
		idx := strconv.Itoa(i)
		for _, p := range tr {
			row := []string{
				idx,
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
