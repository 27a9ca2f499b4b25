package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/render"
)

const (
	metadataFile = "metadata.json"
	statsFile    = "frames.csv"
	framesFile   = "frames.txt"

	// frameSeparator ends every frame in frames.txt.
	frameSeparator = "\f"
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

type RecordingMetadata struct {
	ID         string           `json:"id"`
	Preset     string           `json:"preset"`
	Timestamp  time.Time        `json:"timestamp"`
	Start      fractal.Viewport `json:"start"`
	ZoomFactor float64          `json:"zoom_factor"`
	MaxFrames  int              `json:"max_frames"`
	Frames     int              `json:"frames"`
}

// FrameStats summarizes one recorded frame.
type FrameStats struct {
	Index       int
	Direction   string
	Viewport    fractal.Viewport
	Mean        float64
	InsideRatio float64
}

// Save writes a recording into its own directory and returns its id.
func (s *Store) Save(meta RecordingMetadata, rec *Recorder) (string, error) {
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Preset, time.Now().UnixNano())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.Frames = len(rec.Frames)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeStats(filepath.Join(runDir, statsFile), rec.Stats); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, f := range rec.Frames {
		b.WriteString(f.String())
		b.WriteString("\n")
		b.WriteString(frameSeparator)
	}
	if err := os.WriteFile(filepath.Join(runDir, framesFile), []byte(b.String()), 0644); err != nil {
		return "", err
	}

	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStats(path string, stats []FrameStats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"frame", "direction", "xmin", "xmax", "ymin", "ymax", "mean", "inside"}); err != nil {
		return err
	}
	for _, st := range stats {
		row := []string{
			strconv.Itoa(st.Index),
			st.Direction,
			formatFloat(st.Viewport.XMin),
			formatFloat(st.Viewport.XMax),
			formatFloat(st.Viewport.YMin),
			formatFloat(st.Viewport.YMax),
			formatFloat(st.Mean),
			formatFloat(st.InsideRatio),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns all readable recordings, oldest first.
func (s *Store) List() ([]RecordingMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordingMetadata{}, nil
		}
		return nil, err
	}

	recs := make([]RecordingMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		recs = append(recs, *meta)
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].Timestamp.Before(recs[j].Timestamp) })
	return recs, nil
}

func (s *Store) Load(id string) (*RecordingMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RecordingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(id string) ([]render.Frame, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, framesFile))
	if err != nil {
		return nil, err
	}

	chunks := strings.Split(string(data), frameSeparator)
	frames := make([]render.Frame, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.TrimSuffix(chunk, "\n")
		if chunk == "" {
			continue
		}
		frames = append(frames, render.Frame(strings.Split(chunk, "\n")))
	}
	return frames, nil
}

func (s *Store) LoadStats(id string) ([]FrameStats, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, statsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameStats{}, nil
	}

	stats := make([]FrameStats, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 8 {
			continue
		}
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		vals := make([]float64, 6)
		ok := true
		for i := range vals {
			vals[i], err = strconv.ParseFloat(rec[i+2], 64)
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		stats = append(stats, FrameStats{
			Index:       idx,
			Direction:   rec[1],
			Viewport:    fractal.Viewport{XMin: vals[0], XMax: vals[1], YMin: vals[2], YMax: vals[3]},
			Mean:        vals[4],
			InsideRatio: vals[5],
		})
	}
	return stats, nil
}
