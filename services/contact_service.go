// services/contact_service.go - per-clan phone directory on disk
package services

import (
	"clanboard/models"
	"clanboard/utils"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDataDir is where the per-clan contact tables live, one CSV per
// clan, created on first save.
const DefaultDataDir = "clan_data"

var contactHeader = []string{"tag", "name", "phone"}

// ContactService reads and writes the clan-scoped contact tables. There is
// exactly one mutator per clan at a time (the interactive operator), so the
// files are rewritten whole with no locking.
type ContactService struct {
	dir string
}

func NewContactService(dir string) *ContactService {
	if dir == "" {
		dir = DefaultDataDir
	}
	return &ContactService{dir: dir}
}

// FilePath returns the CSV path for a clan. Distinct tags can collide after
// sanitization; see utils.SanitizeTag.
func (s *ContactService) FilePath(clanTag string) string {
	return filepath.Join(s.dir, "contacts_"+utils.SanitizeTag(clanTag)+".csv")
}

// Load reads the clan's contact table. A missing, empty or malformed file
// yields an empty set, never an error: the dashboard must keep working with
// no directory on disk, and a broken file is only worth a logged warning.
func (s *ContactService) Load(clanTag string) []models.ContactRecord {
	path := s.FilePath(clanTag)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Could not open contact table %s: %v", path, err)
		}
		return []models.ContactRecord{}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, columns are matched by header below
	rows, err := reader.ReadAll()
	if err != nil {
		log.Printf("⚠️ Contact table %s is malformed, starting empty: %v", path, err)
		return []models.ContactRecord{}
	}
	if len(rows) < 2 {
		return []models.ContactRecord{}
	}

	// Match columns by header name so column order in the file is free.
	index := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		index[strings.TrimSpace(col)] = i
	}
	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]models.ContactRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, models.ContactRecord{
			Tag:   field(row, "tag"),
			Name:  field(row, "name"),
			Phone: field(row, "phone"),
		})
	}
	return records
}

// Save writes the clan's full contact table, replacing prior contents. The
// records are already schema-exact (see NormalizeContacts), so the stored
// file is always tag,name,phone regardless of what the caller held.
func (s *ContactService) Save(records []models.ContactRecord, clanTag string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create data directory %s: %w", s.dir, err)
	}

	path := s.FilePath(clanTag)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write contact table %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(contactHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write([]string{r.Tag, r.Name, r.Phone}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// NormalizeContacts coerces caller-supplied rows to the stored schema:
// unknown columns are dropped, missing ones become the empty string. Saving
// and reloading any input therefore yields stable tag,name,phone triples.
func NormalizeContacts(rows []map[string]string) []models.ContactRecord {
	records := make([]models.ContactRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.ContactRecord{
			Tag:   row["tag"],
			Name:  row["name"],
			Phone: row["phone"],
		})
	}
	return records
}
