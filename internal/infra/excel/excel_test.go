package excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/domain/hardware"
	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/store"
)

func newExporter() *Exporter {
	now := time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC)
	return NewExporter(inventory.New(store.NewMemory(), expiry.Default, func() time.Time { return now }))
}

func TestWriteThenRead(t *testing.T) {
	data, err := Encode(Table{
		Sheet:  "Things",
		Header: []string{"name", "count"},
		Rows:   [][]any{{"alpha", 1}, {"", ""}, {"beta", 2}},
	})
	require.NoError(t, err)

	rows, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]string{"name": "alpha", "count": "1"}, rows[0])
	assert.Equal(t, "beta", rows[1]["name"])
}

func TestReadHeaderOnly(t *testing.T) {
	data, err := Encode(Table{Header: []string{"name"}})
	require.NoError(t, err)
	_, err = Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = Read(bytes.NewReader([]byte("not a zip")))
	assert.Error(t, err)
}

func TestExportEveryEntity(t *testing.T) {
	e := newExporter()
	for _, name := range inventory.Entities {
		tbl, err := e.Table(context.Background(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, tbl.Rows, name)
		for _, r := range tbl.Rows {
			assert.Len(t, r, len(tbl.Header), name)
		}
	}
	_, err := e.Table(context.Background(), "wires")
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestCredentialsExportHasNoPasswords(t *testing.T) {
	tbl, err := newExporter().Table(context.Background(), "credentials")
	require.NoError(t, err)
	assert.NotContains(t, tbl.Header, "password")
	for _, r := range tbl.Rows {
		assert.NotContains(t, r, "Kx9#mQ2$vL7pR4")
	}
}

func TestHardwareExportReimports(t *testing.T) {
	e := newExporter()
	tbl, err := e.Table(context.Background(), "hardware")
	require.NoError(t, err)
	data, err := Encode(tbl)
	require.NoError(t, err)

	rows, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	ins := HardwareInputs(rows)
	require.Len(t, ins, len(hardware.Defaults()))
	assert.Equal(t, "Dell XPS 15 Laptop", ins[0].Name)
	assert.Equal(t, "2025-05-15", ins[0].Warranty)
	for _, in := range ins {
		assert.NoError(t, in.Validate())
	}
}

func TestWarrantyInputs(t *testing.T) {
	ins := WarrantyInputs([]map[string]string{{
		"item": "Kindle", "provider": "Amazon", "expirationDate": "2024-01-01", "status": "Active",
	}})
	require.Len(t, ins, 1)
	assert.Equal(t, "Kindle", ins[0].Item)
	assert.Equal(t, "2024-01-01", ins[0].ExpirationDate)
}

func TestReadConvertsDateCells(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"item", "provider", "expirationDate", "purchaseDate", "qty"}))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Kindle"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "Amazon"))
	require.NoError(t, f.SetCellValue(sheet, "C2", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))

	custom := "dd.mm.yyyy"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheet, "D2", 45292)) // 2024-01-01
	require.NoError(t, f.SetCellStyle(sheet, "D2", "D2", style))
	require.NoError(t, f.SetCellValue(sheet, "E2", 3))

	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf))

	rows, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-06-15", rows[0]["expirationDate"])
	assert.Equal(t, "2024-01-01", rows[0]["purchaseDate"])
	assert.Equal(t, "3", rows[0]["qty"])

	ins := WarrantyInputs(rows)
	require.Len(t, ins, 1)
	assert.NoError(t, ins[0].Validate())
}
