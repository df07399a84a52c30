package services

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bounis0910/Att-School/app/models"
	"github.com/xuri/excelize/v2"
)

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Grade 5B", "Grade 5B"},
		{"P6 [Science]", "P6 Science"},
		{"Math: Term/1 *final?", "Math Term1 final"},
		{"", "Class"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
		// Arabic class names truncate at 31 characters, not bytes.
		{strings.Repeat("الصف", 10), string([]rune(strings.Repeat("الصف", 10))[:31])},
	}

	for _, tt := range tests {
		got := SanitizeSheetName(tt.input)
		if got != tt.want {
			t.Errorf("SanitizeSheetName(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("SanitizeSheetName(%q) produced invalid UTF-8 %q", tt.input, got)
		}
	}
}

func TestClaimSheetNameCollisions(t *testing.T) {
	used := make(map[string]bool)

	first := claimSheetName("Term?1", used)
	second := claimSheetName("Term*1", used)

	if first != "Term1" {
		t.Errorf("first claim = %q, want Term1", first)
	}
	if second != "Term1-2" {
		t.Errorf("second claim = %q, want Term1-2", second)
	}

	// A long name keeps the 31-char limit after suffixing.
	long := strings.Repeat("y", 40)
	used2 := map[string]bool{strings.Repeat("y", 31): true}
	suffixed := claimSheetName(long, used2)
	if len(suffixed) > 31 || !strings.HasSuffix(suffixed, "-2") {
		t.Errorf("suffixed claim = %q (len %d), want 31-char name ending in -2", suffixed, len(suffixed))
	}

	// Multibyte names suffix on character boundaries only.
	arabic := strings.Repeat("الصف", 10)
	used3 := map[string]bool{SanitizeSheetName(arabic): true}
	arabicSuffixed := claimSheetName(arabic, used3)
	if !utf8.ValidString(arabicSuffixed) {
		t.Errorf("suffixed claim %q is not valid UTF-8", arabicSuffixed)
	}
	if n := len([]rune(arabicSuffixed)); n > 31 {
		t.Errorf("suffixed claim %q is %d characters, limit 31", arabicSuffixed, n)
	}
	if !strings.HasSuffix(arabicSuffixed, "-2") {
		t.Errorf("suffixed claim = %q, want -2 suffix", arabicSuffixed)
	}
}

func reportFixture() []*ClassReportData {
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	records := []*models.Attendance{
		{StudentID: "s1", Period: 1, Status: models.Absent, Remark: models.RemarkExcused, Date: date},
		{StudentID: "s2", Period: 1, Status: models.Present, Remark: models.RemarkNone, Date: date},
	}
	byStudent := map[string]map[int]*models.Attendance{
		"s1": {1: records[0]},
		"s2": {1: records[1]},
	}

	return []*ClassReportData{{
		Class: &models.Class{ID: "c1", Name: "Grade 5B"},
		Students: []*models.Student{
			{ID: "s1", FirstName: "Aisha", LastName: "Khalid"},
			{ID: "s2", FirstName: "Omar", LastName: "Farouk"},
		},
		Records:      byStudent,
		Summary:      Summarize(records),
		TeacherNames: []string{"Fatima Noor"},
	}}
}

func TestRenderDailyReportSheetContent(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	if err := RenderDailyReport(f, date, reportFixture()); err != nil {
		t.Fatalf("RenderDailyReport: %v", err)
	}

	sheet := "Grade 5B"
	cells := map[string]string{
		"A1": "Grade 5B - 2025-03-09",
		"A2": "Student",
		"B2": "P1",
		"A3": "Aisha Khalid",
		"B3": "E",
		"A4": "Omar Farouk",
		"B4": "P",
		"A5": "Total",
		"B5": "2P / 0A",
		"A6": "Teachers",
		"B6": "Fatima Noor",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}

	// The default sheet is dropped once real sheets exist.
	for _, name := range f.GetSheetList() {
		if name == "Sheet1" {
			t.Error("default Sheet1 should have been removed")
		}
	}
}

func TestRenderDailyReportIsIdempotent(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	if err := RenderDailyReport(f, date, reportFixture()); err != nil {
		t.Fatalf("first render: %v", err)
	}
	firstRows, err := f.GetRows("Grade 5B")
	if err != nil {
		t.Fatal(err)
	}

	if err := RenderDailyReport(f, date, reportFixture()); err != nil {
		t.Fatalf("second render: %v", err)
	}

	if got := len(f.GetSheetList()); got != 1 {
		t.Fatalf("sheet count after rebuild = %d, want 1 (%v)", got, f.GetSheetList())
	}
	secondRows, err := f.GetRows("Grade 5B")
	if err != nil {
		t.Fatal(err)
	}
	if len(secondRows) != len(firstRows) {
		t.Errorf("row count after rebuild = %d, want %d (rows must not accumulate)",
			len(secondRows), len(firstRows))
	}
}

func TestRenderDailyReportReusesSuffixedSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	date := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	data := reportFixture()
	second := *data[0]
	secondClass := *data[0].Class
	secondClass.ID = "c2"
	secondClass.Name = "Grade 5B?" // sanitizes to the same label
	second.Class = &secondClass
	data = append(data, &second)

	for i := 0; i < 2; i++ {
		if err := RenderDailyReport(f, date, data); err != nil {
			t.Fatalf("render %d: %v", i+1, err)
		}
	}

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("sheet count = %d, want 2 (%v)", len(sheets), sheets)
	}
	found := map[string]bool{}
	for _, name := range sheets {
		found[name] = true
	}
	if !found["Grade 5B"] || !found["Grade 5B-2"] {
		t.Errorf("sheets = %v, want [Grade 5B, Grade 5B-2]", sheets)
	}
}

func TestStatusSymbol(t *testing.T) {
	tests := []struct {
		record *models.Attendance
		want   string
	}{
		{nil, ""},
		{&models.Attendance{Status: models.Present, Remark: models.RemarkNone}, "P"},
		{&models.Attendance{Status: models.Absent, Remark: models.RemarkNone}, "A"},
		{&models.Attendance{Status: models.Absent, Remark: models.RemarkStillAbsent}, "A"},
		{&models.Attendance{Status: models.Absent, Remark: models.RemarkExcused}, "E"},
	}

	for _, tt := range tests {
		if got := statusSymbol(tt.record); got != tt.want {
			t.Errorf("statusSymbol(%+v) = %q, want %q", tt.record, got, tt.want)
		}
	}
}

func TestFormatTotals(t *testing.T) {
	if got := formatTotals(PeriodCounts{PresentTotal: 2, AbsentTotal: 0}); got != "2P / 0A" {
		t.Errorf("formatTotals = %q, want 2P / 0A", got)
	}
}
