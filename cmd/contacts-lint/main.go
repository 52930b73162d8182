// Checks every per-clan contact table under ./clan_data for schema problems:
// wrong header, short rows, duplicate tags. Exits non-zero on any finding.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	dir := os.Getenv("CLAN_DATA_DIR")
	if dir == "" {
		dir = "clan_data"
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		fmt.Printf("error: cannot read %s: %v\n", dir, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("no contact tables found in %s\n", dir)
		return
	}

	exitCode := 0
	for _, f := range files {
		if !lintFile(f) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func lintFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		fmt.Printf("%s: open error: %v\n", path, err)
		return false
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		fmt.Printf("%s: parse error: %v\n", path, err)
		return false
	}
	if len(rows) == 0 {
		fmt.Printf("%s: empty file (no header)\n", path)
		return false
	}

	ok := true
	header := rows[0]
	if len(header) != 3 || header[0] != "tag" || header[1] != "name" || header[2] != "phone" {
		fmt.Printf("%s: header is %v, want [tag name phone]\n", path, header)
		ok = false
	}

	seen := make(map[string]int)
	for i, row := range rows[1:] {
		lineNum := i + 2
		if len(row) < 3 {
			fmt.Printf("%s:%d: only %d columns\n", path, lineNum, len(row))
			ok = false
			continue
		}
		tag := row[0]
		if tag == "" {
			fmt.Printf("%s:%d: empty tag\n", path, lineNum)
			ok = false
			continue
		}
		if prev, dup := seen[tag]; dup {
			fmt.Printf("%s:%d: duplicate tag %s (first seen on line %d)\n", path, lineNum, tag, prev)
			ok = false
		}
		seen[tag] = lineNum
	}

	if ok {
		fmt.Printf("%s: OK (%d records)\n", path, len(rows)-1)
	}
	return ok
}
