package library

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/DangerDawgAU/cable-datasheet-extractor/internal/entity"
)

// MergeStats summarizes one merge over a set of library files.
type MergeStats struct {
	Files      int
	Failed     int // unreadable or schema-invalid inputs, skipped
	Loaded     int
	Unique     int
	Duplicates int
}

// Service merges cable library files on disk.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// libraryFile tolerates both the wrapped {"Cables": [...]} form and a bare
// record array.
type libraryFile struct {
	Cables json.RawMessage `json:"Cables"`
}

// LoadFile reads one library file and returns its validated record list.
func (s *Service) LoadFile(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library %s: %w", path, err)
	}

	raw := data
	var wrapped libraryFile
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Cables != nil {
		raw = wrapped.Cables
	}

	cables, err := ValidateRecordList(raw)
	if err != nil {
		return nil, fmt.Errorf("validate library %s: %w", path, err)
	}
	s.logger.Info("merge.load", "path", path, "cables", len(cables))
	return cables, nil
}

// MergeFiles loads every input library in order and merges them. Earlier
// files win cable id collisions. Inputs that cannot be read or fail schema
// validation are skipped and counted, never fatal.
func (s *Service) MergeFiles(paths []string) (entity.CableLibrary, MergeStats, error) {
	merger := NewMerger(s.logger)
	stats := MergeStats{Files: len(paths)}

	for _, path := range paths {
		cables, err := s.LoadFile(path)
		if err != nil {
			s.logger.Warn("merge.skip_file", "path", path, "error", err)
			stats.Failed++
			continue
		}
		stats.Loaded += len(cables)
		merger.Add(cables)
	}

	stats.Unique = merger.Len()
	stats.Duplicates = merger.Duplicates()
	s.logger.Info("merge.done",
		"files", stats.Files,
		"failed", stats.Failed,
		"loaded", stats.Loaded,
		"unique", stats.Unique,
		"duplicates", stats.Duplicates,
	)
	return merger.Library(), stats, nil
}

// WriteFile persists a merged library with stable indentation.
func (s *Service) WriteFile(path string, lib entity.CableLibrary) error {
	data, err := json.MarshalIndent(lib, "", "    ")
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write library %s: %w", path, err)
	}
	s.logger.Info("merge.write", "path", path, "cables", len(lib.Cables))
	return nil
}
