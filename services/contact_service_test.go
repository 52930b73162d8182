package services

import (
	"clanboard/models"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRoundTrip(t *testing.T) {
	s := NewContactService(t.TempDir())

	records := []models.ContactRecord{
		{Tag: "#A", Name: "Ann", Phone: "555-1234"},
		{Tag: "#B", Name: "Bob", Phone: ""},
		{Tag: "#C", Name: "name, with comma", Phone: "+55 11 99999-0000"},
	}
	require.NoError(t, s.Save(records, "#QPYL8YCV"))

	assert.Equal(t, records, s.Load("#QPYL8YCV"))
}

func TestLoadMissingFileIsEmptyNotNil(t *testing.T) {
	s := NewContactService(t.TempDir())

	records := s.Load("#NOPE")

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLoadMalformedFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewContactService(dir)
	// unterminated quote makes the CSV unparseable
	require.NoError(t, os.WriteFile(s.FilePath("#BAD"), []byte("tag,name,phone\n\"oops,Ann,555\n"), 0o644))

	assert.Empty(t, s.Load("#BAD"))
}

func TestLoadHeaderOnlyFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewContactService(dir)
	require.NoError(t, os.WriteFile(s.FilePath("#EMPTY"), []byte("tag,name,phone\n"), 0o644))

	assert.Empty(t, s.Load("#EMPTY"))
}

// Files written by other tools may order columns differently, carry extra
// ones or miss some; loading must still produce stable triples.
func TestLoadNormalizesForeignColumnLayout(t *testing.T) {
	dir := t.TempDir()
	s := NewContactService(dir)
	content := "phone,tag,trophies\n555-1234,#A,6000\n,#B,4000\n"
	require.NoError(t, os.WriteFile(s.FilePath("#X"), []byte(content), 0o644))

	records := s.Load("#X")

	require.Len(t, records, 2)
	assert.Equal(t, models.ContactRecord{Tag: "#A", Name: "", Phone: "555-1234"}, records[0])
	assert.Equal(t, models.ContactRecord{Tag: "#B", Name: "", Phone: ""}, records[1])
}

func TestSaveWritesSchemaStableHeader(t *testing.T) {
	dir := t.TempDir()
	s := NewContactService(dir)
	require.NoError(t, s.Save([]models.ContactRecord{{Tag: "#A", Name: "Ann", Phone: "5"}}, "#QPYL8YCV"))

	data, err := os.ReadFile(filepath.Join(dir, "contacts_QPYL8YCV.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "tag,name,phone", lines[0])
	assert.Equal(t, "#A,Ann,5", lines[1])
}

func TestSaveReplacesPriorContents(t *testing.T) {
	s := NewContactService(t.TempDir())
	require.NoError(t, s.Save([]models.ContactRecord{
		{Tag: "#A", Name: "Ann", Phone: "1"},
		{Tag: "#B", Name: "Bob", Phone: "2"},
	}, "#C"))

	require.NoError(t, s.Save([]models.ContactRecord{{Tag: "#A", Name: "Ann", Phone: "9"}}, "#C"))

	records := s.Load("#C")
	require.Len(t, records, 1)
	assert.Equal(t, "9", records[0].Phone)
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "clan_data")
	s := NewContactService(dir)

	require.NoError(t, s.Save([]models.ContactRecord{{Tag: "#A", Name: "Ann"}}, "#T"))

	_, err := os.Stat(dir)
	assert.NoError(t, err)
}

func TestNormalizeContacts(t *testing.T) {
	rows := []map[string]string{
		{"tag": "#A", "name": "Ann", "phone": "555", "trophies": "6000"}, // extra column dropped
		{"tag": "#B"}, // missing columns filled
		{},            // fully empty row still yields a record
	}

	records := NormalizeContacts(rows)

	assert.Equal(t, []models.ContactRecord{
		{Tag: "#A", Name: "Ann", Phone: "555"},
		{Tag: "#B", Name: "", Phone: ""},
		{Tag: "", Name: "", Phone: ""},
	}, records)

	// normalization is idempotent: re-normalizing the output changes nothing
	again := make([]map[string]string, len(records))
	for i, r := range records {
		again[i] = map[string]string{"tag": r.Tag, "name": r.Name, "phone": r.Phone}
	}
	assert.Equal(t, records, NormalizeContacts(again))
}
