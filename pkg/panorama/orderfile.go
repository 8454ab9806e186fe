package panorama

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/kaydubbed/PanRuleOrder/pkg/errors"
)

// ReadOrderFile reads the desired rule order from a CSV file: one name per
// non-empty row, taken from the first field with surrounding whitespace
// stripped. Rows whose first field is empty are skipped.
func ReadOrderFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "CSV file not found: %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFormat, "malformed order list %s", path)
	}

	var order []string
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		order = append(order, name)
	}
	return order, nil
}
