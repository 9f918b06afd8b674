// Package excel выгружает коллекции в .xlsx и читает строки для импорта.
package excel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var ErrNoRows = errors.New("excel: no data rows")

// Table — один лист: заголовок и строки значений.
type Table struct {
	Sheet  string
	Header []string
	Rows   [][]any
}

func Write(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if t.Sheet != "" && t.Sheet != sheet {
		if err := f.SetSheetName(sheet, t.Sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
		sheet = t.Sheet
	}

	header := make([]any, 0, len(t.Header))
	for _, h := range t.Header {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func Encode(t Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Write(buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read читает активный лист: первая строка — имена колонок,
// каждая следующая непустая строка — map колонка -> значение.
func Read(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read raw rows: %w", err)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	var out []map[string]string
	for r, row := range rows[1:] {
		rec := map[string]string{}
		empty := true
		for i, v := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if d, ok := dateCell(f, sheet, i+1, r+2, cellAt(raw, r+1, i), v); ok {
				v = d
			}
			v = strings.TrimSpace(v)
			if v != "" {
				empty = false
			}
			rec[header[i]] = v
		}
		if !empty {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

func cellAt(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}

// dateCell переводит ячейку с форматом даты из серийного номера Excel в
// YYYY-MM-DD. Показанное значение зависит от локали и в валидацию не проходит.
func dateCell(f *excelize.File, sheet string, col, row int, raw, shown string) (string, bool) {
	if raw == "" || raw == shown {
		return "", false
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", false
	}
	idx, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", false
	}
	st, err := f.GetStyle(idx)
	if err != nil || st == nil || !isDateFormat(st.NumFmt, st.CustomNumFmt) {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}
	return t.Format(time.DateOnly), true
}

// isDateFormat — встроенные форматы даты (14-17, 22, 27-36, 50-58) или
// свой формат с днём либо годом.
func isDateFormat(id int, custom *string) bool {
	switch {
	case id >= 14 && id <= 17, id == 22, id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	case custom != nil:
		code := strings.ToLower(*custom)
		return strings.ContainsAny(code, "dy")
	}
	return false
}
