package attendancecontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raveogahee/timecard/config"
	"github.com/raveogahee/timecard/helper"
	"github.com/raveogahee/timecard/models"
)

const predictionHistory = 10

type clockInInput struct {
	EmployeeID string `json:"employee_id"`
}

type clockOutInput struct {
	EmployeeID      string `json:"employee_id"`
	OvertimeMinutes int    `json:"overtime_minutes"`
}

func ClockIn(c *gin.Context) {
	var input clockInInput
	if err := c.ShouldBindJSON(&input); err != nil || input.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "従業員IDが必要です"})
		return
	}

	attendance, err := models.StartShift(models.DB, input.EmployeeID, helper.Now(), config.Location)
	switch {
	case errors.Is(err, models.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "従業員が見つかりません"})
		return
	case errors.Is(err, models.ErrAlreadyWorking):
		c.JSON(http.StatusConflict, gin.H{"error": "既に出勤中です"})
		return
	case err != nil:
		log.Printf("clock-in %s: %v", input.EmployeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, attendance)
}

func ClockOut(c *gin.Context) {
	var input clockOutInput
	if err := c.ShouldBindJSON(&input); err != nil || input.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "従業員IDが必要です"})
		return
	}

	attendance, err := models.EndShift(models.DB, input.EmployeeID, helper.Now(), input.OvertimeMinutes)
	switch {
	case errors.Is(err, models.ErrNoWorkingShift):
		c.JSON(http.StatusNotFound, gin.H{"error": "出勤記録がありません"})
		return
	case err != nil:
		log.Printf("clock-out %s: %v", input.EmployeeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, attendance)
}

// GetStatus reports whether the employee is on shift. A shift left open
// from an earlier day is flagged so the kiosk can ask for a clock-out.
func GetStatus(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "従業員IDが必要です"})
		return
	}

	working, err := models.FindWorkingShift(models.DB, employeeID)
	if errors.Is(err, models.ErrNoWorkingShift) {
		c.JSON(http.StatusOK, gin.H{
			"is_working":            false,
			"working_record":        nil,
			"is_old_working_record": false,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := helper.WorkDate(helper.Now(), config.Location)
	response := gin.H{
		"is_working":            true,
		"working_record":        working,
		"is_old_working_record": working.WorkDate < today,
	}
	if predicted, ok := predictClockOut(working); ok {
		response["predicted_clock_out"] = predicted
	}

	c.JSON(http.StatusOK, response)
}

func predictClockOut(working *models.Attendance) (string, bool) {
	history, err := models.RecentCompletedShifts(models.DB, working.EmployeeID, predictionHistory)
	if err != nil || len(history) < helper.MinTrainingShifts {
		return "", false
	}

	pairs := make([][2]int, 0, len(history))
	for _, shift := range history {
		pairs = append(pairs, [2]int{
			helper.MinuteOfDay(shift.ClockIn, config.Location),
			helper.MinuteOfDay(*shift.ClockOut, config.Location),
		})
	}

	predicted, err := helper.PredictClockOut(pairs, helper.MinuteOfDay(working.ClockIn, config.Location))
	if err != nil {
		return "", false
	}
	return predicted, true
}

// GetToday lists the employee's shifts for the current work date.
func GetToday(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "従業員IDが必要です"})
		return
	}

	today := helper.WorkDate(helper.Now(), config.Location)
	records := []models.Attendance{}
	err := models.DB.Where("employee_id = ? AND work_date = ?", employeeID, today).
		Order("shift_number").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
