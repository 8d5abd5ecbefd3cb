package drainage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CoefficientSheet is the worksheet LoadTable reads from an xlsx file.
const CoefficientSheet = "Coefficients"

// Table holds the lookup coefficients used by the parameter resolver.
type Table struct {
	Infiltration        map[string]float64 // soil -> mm/hr
	DefaultInfiltration float64
	Rainfall            map[string]float64 // label -> mm/hr
	DefaultRainfall     float64
}

func DefaultTable() Table {
	return Table{
		Infiltration: map[string]float64{
			string(SoilSandy): 30.0,
			string(SoilLoamy): 15.0,
			string(SoilClay):  2.0,
		},
		DefaultInfiltration: 10.0,
		Rainfall: map[string]float64{
			"heavy":    60.0,
			"moderate": 20.0,
			"light":    5.0,
		},
		DefaultRainfall: 20.0,
	}
}

// LoadTable starts from DefaultTable and applies overrides from a CSV file
// and then an xlsx file. Empty paths are skipped. Rows are kind,key,value
// where kind is infiltration or rainfall; key "*" sets the fallback.
func LoadTable(csvPath, xlsxPath string) (Table, error) {
	t := DefaultTable()
	if csvPath != "" {
		if err := t.loadCSV(csvPath); err != nil {
			return t, fmt.Errorf("coefficients csv %s: %w", csvPath, err)
		}
	}
	if xlsxPath != "" {
		if err := t.loadXLSX(xlsxPath); err != nil {
			return t, fmt.Errorf("coefficients xlsx %s: %w", xlsxPath, err)
		}
	}
	return t, nil
}

func (t *Table) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if _, err := cr.Read(); err != nil { // header
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		t.applyRow(rec)
	}
}

func (t *Table) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	rows, err := x.GetRows(CoefficientSheet)
	if err != nil {
		return err
	}
	for i, rec := range rows {
		if i == 0 {
			continue // header
		}
		t.applyRow(rec)
	}
	return nil
}

// applyRow ignores short rows, unknown kinds and unparsable values.
func (t *Table) applyRow(rec []string) {
	if len(rec) < 3 {
		return
	}
	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF")
		return strings.ToLower(s)
	}
	kind, key := norm(rec[0]), norm(rec[1])
	val, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil || key == "" {
		return
	}
	switch kind {
	case "infiltration", "soil":
		if key == "*" {
			t.DefaultInfiltration = val
			return
		}
		t.Infiltration[key] = val
	case "rainfall", "rain":
		if key == "*" {
			t.DefaultRainfall = val
			return
		}
		t.Rainfall[key] = val
	}
}
