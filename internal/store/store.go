// Package store persists the student roster as a flat CSV file.
//
// The on-disk format is a header row (roll,name,marks) followed by one row
// per record. The file is meant to stay hand-editable: loading is lenient
// about quoting, ragged rows, and a leading byte order mark, and field
// values are preserved byte-for-byte so a load/save cycle does not rewrite
// data it did not touch.
package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vanshika-gupta001/Student-management/internal/logging"
	"github.com/Vanshika-gupta001/Student-management/internal/roster"
)

// ErrMalformed reports a roster file that exists but cannot be used: invalid
// CSV, a missing header row, or a header that does not match the expected
// columns. The wrapping error carries the file path and the underlying cause.
var ErrMalformed = errors.New("malformed roster file")

// Store reads and writes the roster file at a fixed path. Every load reads
// the whole file and every save rewrites it; rosters are small enough that
// the whole-file model keeps persistence all-or-nothing per operation.
type Store struct {
	path string
	log  *slog.Logger
}

// New returns a store for the roster file at path. The file itself is only
// created on first use; see EnsureInitialized.
func New(path string) *Store {
	return &Store{path: path, log: logging.Component("store")}
}

// Path returns the location of the roster file.
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized creates the roster file with a header row and no records
// when it does not exist yet, creating parent directories as needed. An
// existing file is never touched, whatever its content; content problems
// surface later as ErrMalformed from LoadAll.
func (s *Store) EnsureInitialized() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	s.log.Debug("creating roster file", "path", s.path)
	return writeFile(s.path, nil)
}

// LoadAll returns every persisted record in file order, initializing the
// store first if the file does not exist yet. Rows shorter than the header
// are padded with empty fields; extra fields beyond the header are dropped.
func (s *Store) LoadAll() ([]roster.Record, error) {
	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(newBOMSkippingReader(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrMalformed, s.path)
	}
	if !headerMatches(rows[0]) {
		return nil, fmt.Errorf("%w: %s: unexpected header %v", ErrMalformed, s.path, rows[0])
	}

	records := make([]roster.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, roster.Record{
			Roll:  field(row, 0),
			Name:  field(row, 1),
			Marks: field(row, 2),
		})
	}
	return records, nil
}

// SaveAll replaces the entire roster file with the given records. The write
// goes to a temporary file in the same directory first and is renamed over
// the roster, so a failed save leaves the previous content in place.
func (s *Store) SaveAll(records []roster.Record) error {
	if err := writeFile(s.path, records); err != nil {
		return err
	}
	s.log.Debug("roster saved", "path", s.path, "records", len(records))
	return nil
}

// Export writes a snapshot of the given records to a separate file in the
// same format as the roster itself.
func (s *Store) Export(path string, records []roster.Record) error {
	if err := writeFile(path, records); err != nil {
		return err
	}
	s.log.Debug("snapshot exported", "path", path, "records", len(records))
	return nil
}

// headerMatches accepts a header whose first columns match the expected
// names, compared case-insensitively with surrounding whitespace ignored.
// Extra trailing columns are tolerated.
func headerMatches(row []string) bool {
	if len(row) < len(roster.Header) {
		return false
	}
	for i, want := range roster.Header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return false
		}
	}
	return true
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func writeFile(path string, records []roster.Record) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	werr := w.Write(roster.Header)
	for _, rec := range records {
		if werr != nil {
			break
		}
		werr = w.Write(rec.Row())
	}
	if werr == nil {
		w.Flush()
		werr = w.Error()
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// newBOMSkippingReader strips a UTF-8 byte order mark from the start of r.
// Spreadsheet tools routinely prepend one when saving CSV, and it would
// otherwise end up glued to the first header cell.
func newBOMSkippingReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(3); err == nil && bytes.Equal(lead, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
	}
	return br
}
