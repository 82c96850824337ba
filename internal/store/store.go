// Package store persists trace runs as one directory per run: a
// metadata.json next to a points.csv holding every trajectory point.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/fieldplot/internal/ode"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Field     string    `json:"field"`
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
	Step      float64   `json:"step"`
	YSpread   float64   `json:"y_spread"`
	StartX    float64   `json:"start_x"`
	MaxX      *float64  `json:"max_x,omitempty"`
	MaxAbsY   *float64  `json:"max_abs_y,omitempty"`
	Points    int       `json:"points"`
}

// Save writes a run directory and returns its id. The caller fills the
// configuration fields of meta; ID, Timestamp and Points are set here.
func (s *Store) Save(meta RunMetadata, trajs []ode.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Field, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Count = len(trajs)
	meta.Points = ode.TotalPoints(trajs)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"traj", "x", "y"}); err != nil {
		return "", err
	}
	for i, tr := range trajs {
		idx := strconv.Itoa(i)
		for _, p := range tr {
			row := []string{
				idx,
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	w.Flush()
	return runID, w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectories reads the points of a stored run back, slotted by
// trajectory index. Trajectories that recorded no points come back empty.
func (s *Store) LoadTrajectories(runID string) ([]ode.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	trajs := make([]ode.Trajectory, meta.Count)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != 3 {
			continue
		}

		idx, err := strconv.Atoi(record[0])
		if err != nil || idx < 0 || idx >= len(trajs) {
			continue
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}

		trajs[idx] = append(trajs[idx], ode.Point{X: x, Y: y})
	}

	return trajs, nil
}
