package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/repo"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrUnsupportedFormat = fmt.Errorf("unsupported export format, use %s or %s", FormatCSV, FormatXLSX)

type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService dumps a module's records for the project owner. Columns are
// id, the schema fields in declaration order, createdAt and updatedAt.
type ExportService interface {
	Export(ctx context.Context, projectID uuid.UUID, slug string, format string) (*ExportFile, error)
}

type exportService struct {
	gate    TenantGate
	records repo.RecordRepo
}

func NewExportService(gate TenantGate, records repo.RecordRepo) ExportService {
	return &exportService{gate: gate, records: records}
}

func (s *exportService) Export(ctx context.Context, projectID uuid.UUID, slug string, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return nil, ErrUnsupportedFormat
	}

	m, err := s.gate.ResolveModuleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	items, err := s.records.List(ctx, projectID, &m.ID)
	if err != nil {
		return nil, err
	}

	header := append([]string{"id"}, m.Fields().Names()...)
	header = append(header, "createdAt", "updatedAt")

	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, exportRow(&items[i], header))
	}

	out := &ExportFile{Filename: fmt.Sprintf("%s.%s", m.Slug, format)}
	if format == FormatCSV {
		out.ContentType = contentTypeCSV
		out.Body, err = buildCSV(header, rows)
	} else {
		out.ContentType = contentTypeXLSX
		out.Body, err = buildXLSX(m.Name, header, rows)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s export: %w", format, err)
	}
	return out, nil
}

func exportRow(d *model.DynamicData, header []string) []string {
	row := make([]string, len(header))
	for i, col := range header {
		switch col {
		case "id":
			row[i] = d.ID.String()
		case "createdAt":
			row[i] = d.CreatedAt.UTC().Format(time.RFC3339)
		case "updatedAt":
			row[i] = d.UpdatedAt.UTC().Format(time.RFC3339)
		default:
			row[i] = cellText(d.Data[col])
		}
	}
	return row
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool, float64, float32, int, int64:
		return fmt.Sprintf("%v", x)
	default:
		b, err := sonic.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}

func buildCSV(header []string, rows [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), w.Error()
}

func buildXLSX(title string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := safeSheetName(title)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})
	if err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	cells := make([]interface{}, 0, len(header))
	for _, h := range header {
		cells = append(cells, excelize.Cell{Value: h, StyleID: headerStyle})
	}
	if err := sw.SetRow("A1", cells); err != nil {
		return nil, err
	}

	for i, r := range rows {
		values := make([]interface{}, 0, len(r))
		for _, v := range r {
			values = append(values, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return nil, err
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeSheetName(name string) string {
	n := strings.TrimSpace(name)
	n = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_").Replace(n)
	if len(n) > 31 {
		n = n[:31]
	}
	if n == "" {
		n = "Records"
	}
	return n
}
