package reportcontroller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/raveogahee/timecard/config"
	"github.com/raveogahee/timecard/helper"
	"github.com/raveogahee/timecard/models"
	"github.com/xuri/excelize/v2"
)

var recordHeader = []string{
	"日付", "従業員名", "シフト番号", "出勤時刻", "退勤時刻",
	"休憩時間(分)", "労働時間(分)", "労働時間(時間)", "備考",
}

var noteCleaner = strings.NewReplacer(",", "，", "\r\n", " ", "\n", " ")

const (
	recordSheet  = "勤怠"
	summarySheet = "集計"
)

func employeeName(record models.Attendance) string {
	if record.Employee == nil {
		return ""
	}
	return record.Employee.Name
}

func clockLabel(record models.Attendance, out bool) string {
	if out {
		if record.ClockOut == nil {
			return ""
		}
		return record.ClockOut.In(config.Location).Format("15:04")
	}
	return record.ClockIn.In(config.Location).Format("15:04")
}

func workHours(minutes int) string {
	if minutes == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(minutes)/60, 'f', 2, 64)
}

func noteText(record models.Attendance) string {
	if record.Note == nil {
		return ""
	}
	return noteCleaner.Replace(*record.Note)
}

func renderCSV(records []models.Attendance) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(recordHeader); err != nil {
		return nil, err
	}
	for _, record := range records {
		row := []string{
			record.WorkDate,
			employeeName(record),
			strconv.Itoa(record.ShiftNumber),
			clockLabel(record, false),
			clockLabel(record, true),
			strconv.Itoa(record.BreakMinutes),
			strconv.Itoa(record.WorkMinutes),
			workHours(record.WorkMinutes),
			noteText(record),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderXLSX writes a workbook with the shift list on one sheet and the
// per-employee totals on another.
func renderXLSX(records []models.Attendance, summaries []EmployeeSummary, year, month int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%d年%d月 勤怠記録", year, month)
	if err := f.SetCellValue(recordSheet, "A1", title); err != nil {
		return nil, err
	}

	header := append(append([]string{}, recordHeader...), "休憩", "労働")
	if err := setRow(f, recordSheet, 3, toCells(header)); err != nil {
		return nil, err
	}
	if err := styleRow(f, recordSheet, 3, len(header), headerStyle); err != nil {
		return nil, err
	}

	for i, record := range records {
		breakMinutes, workMinutes := record.BreakMinutes, record.WorkMinutes
		row := []interface{}{
			record.WorkDate,
			employeeName(record),
			record.ShiftNumber,
			clockLabel(record, false),
			clockLabel(record, true),
			breakMinutes,
			workMinutes,
			workHours(workMinutes),
			noteText(record),
			helper.FormatMinutes(&breakMinutes),
			helper.FormatMinutes(&workMinutes),
		}
		if err := setRow(f, recordSheet, i+4, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	summaryHeader := []interface{}{"従業員名", "勤務日数", "記録数", "労働時間(分)", "労働時間"}
	if err := setRow(f, summarySheet, 1, summaryHeader); err != nil {
		return nil, err
	}
	if err := styleRow(f, summarySheet, 1, len(summaryHeader), headerStyle); err != nil {
		return nil, err
	}
	for i, summary := range summaries {
		row := []interface{}{
			summary.Name,
			summary.TotalDays,
			summary.Records,
			summary.TotalWorkMinutes,
			summary.TotalWorkLabel,
		}
		if err := setRow(f, summarySheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func styleRow(f *excelize.File, sheet string, row, width, style int) error {
	from, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}
