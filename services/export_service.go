// services/export_service.go - pending list download artifacts
package services

import (
	"bytes"
	"clanboard/models"
	"clanboard/utils"
	"encoding/csv"
	"fmt"
	"time"
)

// ExportService renders the pending report as a downloadable CSV.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// PendingCSV serializes the rows as UTF-8 CSV with a name,phone header.
func (s *ExportService) PendingCSV(rows []models.PendingRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"name", "phone"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.Name, r.Phone}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename is deterministic down to the minute: two exports for the same
// clan within one minute share a name. Accepted, this is a manual and
// infrequent action.
func (s *ExportService) Filename(clanTag string, t time.Time) string {
	return fmt.Sprintf("pending_%s_%s.csv", utils.SanitizeTag(clanTag), t.Format("20060102_1504"))
}
