package services

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bounis0910/Att-School/app/database"
	"github.com/bounis0910/Att-School/app/models"
	"github.com/xuri/excelize/v2"
)

// maxSheetNameLen is the xlsx sheet label limit.
const maxSheetNameLen = 31

// ClassReportData is the snapshot one sheet is rendered from: the class,
// its student roster, the day's records keyed by student and period, and
// the names of the teachers who recorded them.
type ClassReportData struct {
	Class        *models.Class
	Students     []*models.Student
	Records      map[string]map[int]*models.Attendance
	Summary      *DaySummary
	TeacherNames []string
}

// RebuildDailyReport regenerates the spreadsheet artifact for a date from
// current database state. One file per date, one sheet per class; repeated
// rebuilds reuse and rewrite each class's sheet instead of appending. The
// rebuild only reads attendance data, it never mutates it.
func RebuildDailyReport(db *sql.DB, dir string, date time.Time) (string, error) {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return "", err
	}

	data := make([]*ClassReportData, 0, len(classes))
	for _, class := range classes {
		classData, err := loadClassReportData(db, class, date)
		if err != nil {
			return "", err
		}
		data = append(data, classData)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("attendance_%s.xlsx", date.Format("2006-01-02")))

	f, err := excelize.OpenFile(path)
	if err != nil {
		f = excelize.NewFile()
	}
	defer f.Close()

	if err := RenderDailyReport(f, date, data); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}

func loadClassReportData(db *sql.DB, class *models.Class, date time.Time) (*ClassReportData, error) {
	students, err := database.GetStudentsByClass(db, class.ID)
	if err != nil {
		return nil, err
	}
	records, err := database.GetAttendanceByClassAndDate(db, class.ID, date)
	if err != nil {
		return nil, err
	}
	teacherNames, err := database.GetRecordingTeacherNames(db, class.ID, date)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[string]map[int]*models.Attendance)
	for _, record := range records {
		if byStudent[record.StudentID] == nil {
			byStudent[record.StudentID] = make(map[int]*models.Attendance)
		}
		byStudent[record.StudentID][record.Period] = record
	}

	return &ClassReportData{
		Class:        class,
		Students:     students,
		Records:      byStudent,
		Summary:      Summarize(records),
		TeacherNames: teacherNames,
	}, nil
}

// RenderDailyReport writes one sheet per class into the workbook,
// clearing and rewriting any sheet that already exists for the class.
func RenderDailyReport(f *excelize.File, date time.Time, data []*ClassReportData) error {
	used := make(map[string]bool)
	for _, classData := range data {
		sheet := claimSheetName(classData.Class.Name, used)

		if index, _ := f.GetSheetIndex(sheet); index < 0 {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		} else if err := clearSheet(f, sheet); err != nil {
			return err
		}

		if err := writeClassSheet(f, sheet, date, classData); err != nil {
			return err
		}
	}

	// Drop the default sheet once real sheets exist
	if len(data) > 0 && !used["Sheet1"] {
		if index, _ := f.GetSheetIndex("Sheet1"); index >= 0 {
			f.DeleteSheet("Sheet1")
		}
	}
	return nil
}

// SanitizeSheetName strips characters xlsx forbids in sheet labels and
// truncates to the 31-character limit.
func SanitizeSheetName(name string) string {
	replacer := strings.NewReplacer("\\", "", "/", "", "?", "", "*", "", "[", "", "]", "", ":", "")
	sanitized := strings.TrimSpace(replacer.Replace(name))
	if sanitized == "" {
		sanitized = "Class"
	}
	if runes := []rune(sanitized); len(runes) > maxSheetNameLen {
		sanitized = string(runes[:maxSheetNameLen])
	}
	return sanitized
}

// claimSheetName picks the sheet label for a class. Collisions inside one
// artifact get a numeric suffix re-truncated to the length limit. Classes
// are processed in stable name order, so a rebuild claims the same labels
// again and rewrites the existing sheets instead of adding new ones.
func claimSheetName(className string, used map[string]bool) string {
	base := SanitizeSheetName(className)
	name := base
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf("-%d", n)
		trimmed := []rune(base)
		if len(trimmed)+len(suffix) > maxSheetNameLen {
			trimmed = trimmed[:maxSheetNameLen-len(suffix)]
		}
		name = string(trimmed) + suffix
	}
	used[name] = true
	return name
}

// clearSheet removes every existing row so a rebuild never appends to
// stale content.
func clearSheet(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	for i := len(rows); i >= 1; i-- {
		if err := f.RemoveRow(sheet, i); err != nil {
			return err
		}
	}
	return nil
}

// statusSymbol maps a record to its report cell symbol: P present,
// A absent, E excused absence.
func statusSymbol(record *models.Attendance) string {
	if record == nil {
		return ""
	}
	if record.Status == models.Present {
		return "P"
	}
	if record.Remark == models.RemarkExcused {
		return "E"
	}
	return "A"
}

// formatTotals renders the fixed two-field present/absent summary cell.
func formatTotals(counts PeriodCounts) string {
	return fmt.Sprintf("%dP / %dA", counts.PresentTotal, counts.AbsentTotal)
}

func writeClassSheet(f *excelize.File, sheet string, date time.Time, data *ClassReportData) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	emphasisStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FDE9D9"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	periods := data.Summary.Periods
	lastCol := len(periods) + 1

	// 1. Title row
	title := fmt.Sprintf("%s - %s", data.Class.Name, date.Format("2006-01-02"))
	f.SetCellValue(sheet, "A1", title)
	endCell, _ := excelize.CoordinatesToCellName(lastCol, 1)
	f.MergeCell(sheet, "A1", endCell)
	f.SetCellStyle(sheet, "A1", endCell, headerStyle)
	f.SetRowHeight(sheet, 1, 25)

	// 2. Header row: one label column plus one column per recorded period
	f.SetCellValue(sheet, "A2", "Student")
	for i, period := range periods {
		cell, _ := excelize.CoordinatesToCellName(i+2, 2)
		f.SetCellValue(sheet, cell, fmt.Sprintf("P%d", period))
	}
	headerEnd, _ := excelize.CoordinatesToCellName(lastCol, 2)
	f.SetCellStyle(sheet, "A2", headerEnd, headerStyle)

	// 3. One row per student
	row := 3
	for _, student := range data.Students {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, cell, student.FullName())
		for i, period := range periods {
			cell, _ := excelize.CoordinatesToCellName(i+2, row)
			f.SetCellValue(sheet, cell, statusSymbol(data.Records[student.ID][period]))
		}
		row++
	}

	// 4. Totals row
	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, cell, "Total")
	for i, period := range periods {
		cell, _ := excelize.CoordinatesToCellName(i+2, row)
		f.SetCellValue(sheet, cell, formatTotals(data.Summary.CountsFor(period)))
	}
	totalsEnd, _ := excelize.CoordinatesToCellName(lastCol, row)
	totalsStart, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellStyle(sheet, totalsStart, totalsEnd, emphasisStyle)
	row++

	// 5. Recording teachers row
	cell, _ = excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, cell, "Teachers")
	cell, _ = excelize.CoordinatesToCellName(2, row)
	f.SetCellValue(sheet, cell, strings.Join(data.TeacherNames, ", "))
	teachersEnd, _ := excelize.CoordinatesToCellName(lastCol, row)
	teachersStart, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellStyle(sheet, teachersStart, teachersEnd, emphasisStyle)

	f.SetColWidth(sheet, "A", "A", 25)
	return nil
}
