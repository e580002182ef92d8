package reportcontroller

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raveogahee/timecard/helper"
	"github.com/raveogahee/timecard/models"
)

// EmployeeSummary is one employee's month.
type EmployeeSummary struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	TotalWorkMinutes          int    `json:"total_work_minutes"`
	TotalDays                 int    `json:"total_days"`
	Records                   int    `json:"records"`
	TotalWorkHours            int    `json:"total_work_hours"`
	TotalWorkMinutesRemainder int    `json:"total_work_minutes_remainder"`
	TotalWorkLabel            string `json:"total_work_label"`
}

// GetMonthlyReport serves completed shifts for a month as JSON (with
// per-employee summaries), CSV or xlsx depending on format.
func GetMonthlyReport(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "年月が必要です"})
		return
	}
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "月は1から12で指定してください"})
		return
	}

	startDate, endDate := monthRange(year, time.Month(month))

	records := []models.Attendance{}
	err := models.DB.Preload("Employee").
		Where("work_date BETWEEN ? AND ? AND status = ?", startDate, endDate, models.StatusCompleted).
		Order("work_date").
		Order("shift_number").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch c.Query("format") {
	case "csv":
		body, err := renderCSV(records)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance_%04d%02d.csv"`, year, month))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
		return
	case "xlsx":
		body, err := renderXLSX(records, SummarizeMonth(records), year, month)
		if err != nil {
			log.Printf("render xlsx report %04d-%02d: %v", year, month, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance_%04d%02d.xlsx"`, year, month))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body)
		return
	}

	allEmployees := []models.Employee{}
	if err := models.DB.Order("name").Find(&allEmployees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":          year,
		"month":         month,
		"employees":     SummarizeMonth(records),
		"all_employees": allEmployees,
		"records":       records,
	})
}

// SummarizeMonth totals each employee's completed shifts. Several shifts on
// one date count as a single day. Summaries are ordered by name.
func SummarizeMonth(records []models.Attendance) []EmployeeSummary {
	byEmployee := map[string]*EmployeeSummary{}
	days := map[string]map[string]struct{}{}

	for _, record := range records {
		if record.Employee == nil {
			continue
		}

		summary, ok := byEmployee[record.EmployeeID]
		if !ok {
			summary = &EmployeeSummary{ID: record.EmployeeID, Name: record.Employee.Name}
			byEmployee[record.EmployeeID] = summary
			days[record.EmployeeID] = map[string]struct{}{}
		}

		summary.TotalWorkMinutes += record.WorkMinutes
		summary.Records++
		days[record.EmployeeID][record.WorkDate] = struct{}{}
	}

	summaries := make([]EmployeeSummary, 0, len(byEmployee))
	for id, summary := range byEmployee {
		summary.TotalDays = len(days[id])
		summary.TotalWorkHours = summary.TotalWorkMinutes / 60
		summary.TotalWorkMinutesRemainder = summary.TotalWorkMinutes % 60
		summary.TotalWorkLabel = helper.FormatMinutesJapanese(&summary.TotalWorkMinutes)
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name == summaries[j].Name {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].Name < summaries[j].Name
	})

	return summaries
}

func monthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(helper.DateLayout), last.Format(helper.DateLayout)
}
