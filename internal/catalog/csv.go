package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"svupick/internal/services"
)

// LoadCSV reads a header-driven episode CSV and normalizes every row. A
// missing file is a data source error carrying the attempted path; malformed
// rows degrade via normalization defaults rather than failing the load.
func LoadCSV(path string) ([]Episode, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrDataSource, "catalog", "load",
				fmt.Sprintf("catalog file not found at %s", path), err)
		}
		return nil, services.Wrap(services.ErrDataSource, "catalog", "load",
			fmt.Sprintf("open catalog %s", path), err)
	}
	defer file.Close()

	episodes, err := readRows(file)
	if err != nil {
		return nil, services.Wrap(services.ErrDataSource, "catalog", "load",
			fmt.Sprintf("read catalog %s", path), err)
	}
	return episodes, nil
}

func readRows(r io.Reader) ([]Episode, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var episodes []Episode
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip rows the reader cannot parse; the rest of the file is
			// still usable.
			continue
		}
		row := make(map[string]string, len(columns))
		for i, value := range record {
			if i < len(columns) {
				row[columns[i]] = value
			}
		}
		episodes = append(episodes, NormalizeRow(row))
	}
	return episodes, nil
}
