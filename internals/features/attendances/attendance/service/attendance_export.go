package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"construction_backend/internals/features/attendances/attendance/dto"

	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

var exportHeaders = []string{"Attendance ID", "Worker ID", "Worker", "Site", "Date", "Status"}

// ExportDay renders ListBySiteAndDate as an XLSX workbook, one row per
// attendance record.
func (s *Service) ExportDay(ctx context.Context, siteID uint, date datatypes.Date) ([]byte, string, error) {
	view, err := s.ListBySiteAndDate(ctx, siteID, date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[ERROR] close workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("set header: %w", err)
		}
	}
	for r, it := range view.Items {
		if err := writeRow(f, sheet, r+2, it); err != nil {
			return nil, "", err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	name := fmt.Sprintf("attendance_site%d_%s.xlsx", view.SiteID, view.Date)
	return buf.Bytes(), name, nil
}

func writeRow(f *excelize.File, sheet string, row int, it dto.AttendanceSummary) error {
	values := []any{it.ID, it.WorkerID, it.WorkerName, it.SiteName, it.Date, it.Status}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
