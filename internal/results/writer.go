package results

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/fileutil"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/identity"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
)

// Columns is the CSV header written for every results file.
var Columns = []string{"id", "name", "locality", "region", "additionalNames", "relatedTo", "url"}

// Writer writes result files beneath a root directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter constructs a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// WithClock overrides the clock used to date result files.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Path returns <dir>/<Family>_<Given>/<site>_<YYYY-MM-DD>.csv.
func (w *Writer) Path(person identity.Identity, site string) string {
	site = textutil.SanitizeToken(identity.SiteKey(site))
	name := fmt.Sprintf("%s_%s.csv", site, w.now().Format("2006-01-02"))
	return filepath.Join(w.dir, person.FileStem(), name)
}

// Write replaces the day's results file for person and site with records and
// returns its path. An empty record set still writes the header so the run
// leaves a dated trace.
func (w *Writer) Write(person identity.Identity, site string, records []identity.CandidateRecord) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(Columns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		addr := record.CurrentAddress()
		related := make([]string, 0, len(record.RelatedTo))
		for _, mention := range record.RelatedTo {
			if raw := mention.RawName(); raw != "" {
				related = append(related, raw)
			}
		}
		row := []string{
			record.ID,
			record.Name,
			addr.Locality,
			addr.Region,
			strings.Join(record.AdditionalNames, "; "),
			strings.Join(related, "; "),
			record.URL,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	path := w.Path(person, site)
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write results %s: %w", path, err)
	}
	return path, nil
}
