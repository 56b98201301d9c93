package roster

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Vanshika-gupta001/Student-management/internal/config"
	"github.com/Vanshika-gupta001/Student-management/internal/logging"
)

// Store is the persistence contract the service operates against. It is
// implemented by the CSV-backed file store; tests may substitute an
// in-memory fake.
type Store interface {
	// EnsureInitialized creates an empty roster (header only) when none
	// exists yet. Existing data is never touched.
	EnsureInitialized() error
	// LoadAll returns every persisted record in file order.
	LoadAll() ([]Record, error)
	// SaveAll replaces the full persisted roster with the given records.
	SaveAll(records []Record) error
	// Export writes a snapshot of the given records to a separate file in
	// the same format as the roster itself.
	Export(path string, records []Record) error
}

// ReportWriter renders the roster into a formatted document. The writer owns
// its destination and layout; the service only supplies ordered row data.
// Write returns the path of the document it produced.
type ReportWriter interface {
	Write(header []string, rows [][]string, total int) (string, error)
}

var (
	// ErrNotFound reports a roll number that matches no record.
	ErrNotFound = errors.New("no matching student record")

	// ErrNoRecords reports an operation that needs at least one record
	// (statistics, CSV export) running against an empty roster.
	ErrNoRecords = errors.New("no student records")

	// ErrReportUnavailable reports a report export on a service that was
	// built without a ReportWriter.
	ErrReportUnavailable = errors.New("report writer not configured")
)

// Stats summarizes the roster's marks.
type Stats struct {
	// Average is the mean of all marks, rounded to two decimal places.
	Average float64
	// TopMarks is the highest marks value in the roster.
	TopMarks float64
	// Toppers holds every record whose marks equal TopMarks, in store order.
	Toppers []Record
}

// Service coordinates every roster operation. Each method reloads the roster
// from the store, works on the in-memory copy, and persists the full set when
// it mutates, so the file on disk is authoritative between calls.
type Service struct {
	store      Store
	writer     ReportWriter
	startRoll  int
	exportPath string
	log        *slog.Logger
}

// NewService wires a service against its store and configuration. writer may
// be nil, in which case ExportReport reports ErrReportUnavailable.
func NewService(st Store, cfg *config.Config, writer ReportWriter) *Service {
	return &Service{
		store:      st,
		writer:     writer,
		startRoll:  cfg.Roster.StartRoll,
		exportPath: cfg.Export.CSVPath,
		log:        logging.Component("roster"),
	}
}

// PreviewRoll reports the roll number Add would assign right now. It is
// read-only; the interactive add flow shows it before prompting for the
// remaining fields.
func (s *Service) PreviewRoll() (string, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return "", err
	}
	return NextRoll(records, s.startRoll), nil
}

// Add validates both inputs, assigns the next roll number, and appends a new
// record. Nothing is persisted unless both inputs validate.
func (s *Service) Add(name, marks string) (Record, error) {
	cleanName, err := ValidateName(name)
	if err != nil {
		return Record{}, err
	}
	value, err := ParseMarks(marks)
	if err != nil {
		return Record{}, err
	}

	records, err := s.store.LoadAll()
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		Roll:  NextRoll(records, s.startRoll),
		Name:  cleanName,
		Marks: FormatMarks(value),
	}
	if err := s.store.SaveAll(append(records, rec)); err != nil {
		return Record{}, err
	}
	s.log.Info("student added", "roll", rec.Roll)
	return rec, nil
}

// Find returns the record whose roll matches the trimmed input exactly.
// Both sides of the comparison are trimmed, so a roll that carries stray
// whitespace in the file still matches. Returns ErrNotFound when no record
// matches.
func (s *Service) Find(roll string) (Record, error) {
	roll = strings.TrimSpace(roll)
	if roll == "" {
		return Record{}, ValidationError{Field: "roll", Message: "cannot be empty"}
	}
	records, err := s.store.LoadAll()
	if err != nil {
		return Record{}, err
	}
	for _, rec := range records {
		if strings.TrimSpace(rec.Roll) == roll {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("roll %q: %w", roll, ErrNotFound)
}

// Delete removes every record whose trimmed roll equals the trimmed input and
// persists the remainder. Any interactive confirmation happens before this
// call; Delete itself is unconditional. It returns the number of records
// removed, or ErrNotFound without touching the store when nothing matched.
func (s *Service) Delete(roll string) (int, error) {
	roll = strings.TrimSpace(roll)
	if roll == "" {
		return 0, ValidationError{Field: "roll", Message: "cannot be empty"}
	}
	records, err := s.store.LoadAll()
	if err != nil {
		return 0, err
	}
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Roll) != roll {
			kept = append(kept, rec)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("roll %q: %w", roll, ErrNotFound)
	}
	if err := s.store.SaveAll(kept); err != nil {
		return 0, err
	}
	s.log.Info("student deleted", "roll", roll, "removed", removed)
	return removed, nil
}

// Search returns the records whose roll or name contains the trimmed query,
// case-insensitively, in store order. An empty result is a normal outcome,
// not an error; an empty query is rejected.
func (s *Service) Search(query string) ([]Record, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ValidationError{Field: "query", Message: "cannot be empty"}
	}
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	var matches []Record
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Roll), q) ||
			strings.Contains(strings.ToLower(rec.Name), q) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// List returns all records sorted for display. Rolls sort numerically when
// every roll parses as an integer; otherwise the whole set falls back to a
// lexicographic sort. The ordering is never a mix of the two.
func (s *Service) List() ([]Record, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sortForDisplay(sorted)
	return sorted, nil
}

func sortForDisplay(records []Record) {
	allNumeric := true
	for _, rec := range records {
		if _, err := strconv.Atoi(strings.TrimSpace(rec.Roll)); err != nil {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		sort.SliceStable(records, func(i, j int) bool {
			a, _ := strconv.Atoi(strings.TrimSpace(records[i].Roll))
			b, _ := strconv.Atoi(strings.TrimSpace(records[j].Roll))
			return a < b
		})
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Roll < records[j].Roll
	})
}

// Stats computes the roster average and the top-marks records. Marks that do
// not parse count as 0.0, so stray values in a hand-edited file lower the
// average instead of aborting the computation. Returns ErrNoRecords on an
// empty roster.
func (s *Service) Stats() (Stats, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return Stats{}, err
	}
	if len(records) == 0 {
		return Stats{}, ErrNoRecords
	}

	values := make([]float64, len(records))
	var total float64
	for i, rec := range records {
		values[i] = rec.MarksValue()
		total += values[i]
	}
	top := values[0]
	for _, v := range values[1:] {
		if v > top {
			top = v
		}
	}

	stats := Stats{
		Average:  math.Round(total/float64(len(records))*100) / 100,
		TopMarks: top,
	}
	for i, rec := range records {
		if values[i] == top {
			stats.Toppers = append(stats.Toppers, rec)
		}
	}
	return stats, nil
}

// Edit updates the first record whose trimmed roll matches. An empty newName
// or newMarks keeps the current value; non-empty marks must validate, and a
// validation failure aborts the whole edit so a rejected marks entry discards
// the name change too. A no-op edit still rewrites the store.
func (s *Service) Edit(roll, newName, newMarks string) (Record, error) {
	roll = strings.TrimSpace(roll)
	if roll == "" {
		return Record{}, ValidationError{Field: "roll", Message: "cannot be empty"}
	}

	records, err := s.store.LoadAll()
	if err != nil {
		return Record{}, err
	}
	idx := -1
	for i, rec := range records {
		if strings.TrimSpace(rec.Roll) == roll {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Record{}, fmt.Errorf("roll %q: %w", roll, ErrNotFound)
	}

	updated := records[idx]
	if name := strings.TrimSpace(newName); name != "" {
		updated.Name = name
	}
	if marks := strings.TrimSpace(newMarks); marks != "" {
		value, err := ParseMarks(marks)
		if err != nil {
			return Record{}, err
		}
		updated.Marks = FormatMarks(value)
	}
	records[idx] = updated
	if err := s.store.SaveAll(records); err != nil {
		return Record{}, err
	}
	s.log.Info("student updated", "roll", updated.Roll)
	return updated, nil
}

// ExportCSV writes a full snapshot of the roster to the configured export
// path and returns that path. An empty roster is reported as ErrNoRecords
// and nothing is written; the export never produces a header-only file.
func (s *Service) ExportCSV() (string, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	if err := s.store.Export(s.exportPath, records); err != nil {
		return "", err
	}
	s.log.Info("roster exported", "path", s.exportPath, "records", len(records))
	return s.exportPath, nil
}

// ExportReport renders the roster into the configured report document and
// returns its path. The writer is optional: without one the export reports
// ErrReportUnavailable and produces nothing. Unlike ExportCSV, an empty
// roster still renders, as a document with a zero total and no data rows.
func (s *Service) ExportReport() (string, error) {
	if s.writer == nil {
		return "", ErrReportUnavailable
	}
	records, err := s.store.LoadAll()
	if err != nil {
		return "", err
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Row()
	}
	path, err := s.writer.Write(DisplayHeader, rows, len(records))
	if err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	s.log.Info("report generated", "path", path, "records", len(records))
	return path, nil
}
