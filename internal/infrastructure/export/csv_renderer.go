package export

import (
	"bytes"
	"encoding/csv"

	"suprimentos/internal/usecase/interfaces"
)

// utf8BOM makes spreadsheet apps detect the encoding of accented headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type CSVRenderer struct {
	Comma rune
}

var _ interfaces.ITableRenderer = (*CSVRenderer)(nil)

func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{Comma: ','}
}

// Render writes the header row followed by one record per row. The title is
// not part of a CSV file.
func (r *CSVRenderer) Render(_ string, headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if r.Comma != 0 {
		w.Comma = r.Comma
	}
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (r *CSVRenderer) Extension() string { return "csv" }
