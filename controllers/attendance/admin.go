package attendancecontroller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raveogahee/timecard/config"
	"github.com/raveogahee/timecard/helper"
	"github.com/raveogahee/timecard/models"
	"gorm.io/gorm"
)

// updateInput carries an admin correction. Absent fields are left alone;
// an empty note clears it.
type updateInput struct {
	ID       string  `json:"id"`
	WorkDate *string `json:"work_date"`
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
	Note     *string `json:"note"`
}

func ListAttendance(c *gin.Context) {
	query := models.DB.Preload("Employee").
		Order("work_date desc").
		Order("shift_number asc")

	if employeeID := c.Query("employee_id"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if startDate := c.Query("start_date"); startDate != "" {
		query = query.Where("work_date >= ?", startDate)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		query = query.Where("work_date <= ?", endDate)
	}

	records := []models.Attendance{}
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// UpdateAttendance applies an admin correction. When clock_in or clock_out
// is sent and the shift has a clock-out, the work time is calculated again
// and the shift is closed. An instant missing from the request is taken
// from the stored record.
func UpdateAttendance(c *gin.Context) {
	var input updateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "IDが必要です"})
		return
	}

	var record models.Attendance
	if err := models.DB.First(&record, "id = ?", input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "勤怠記録が見つかりません"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}

	if input.WorkDate != nil {
		if _, err := time.Parse(helper.DateLayout, *input.WorkDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "日付の形式が正しくありません (YYYY-MM-DD)"})
			return
		}
		updates["work_date"] = *input.WorkDate
	}

	clockIn, clockOut := record.ClockIn, record.ClockOut
	if input.ClockIn != nil {
		t, err := helper.ParseTimestamp(*input.ClockIn, config.Location)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "出勤時刻の形式が正しくありません"})
			return
		}
		clockIn = t
		updates["clock_in"] = t
	}
	if input.ClockOut != nil {
		t, err := helper.ParseTimestamp(*input.ClockOut, config.Location)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "退勤時刻の形式が正しくありません"})
			return
		}
		clockOut = &t
		updates["clock_out"] = t
	}

	if input.Note != nil {
		if *input.Note == "" {
			updates["note"] = nil
		} else {
			updates["note"] = *input.Note
		}
	}

	if (input.ClockIn != nil || input.ClockOut != nil) && clockOut != nil {
		result := helper.CalculateWorkTime(clockIn, *clockOut)
		updates["work_minutes"] = result.WorkMinutes
		updates["break_minutes"] = result.BreakMinutes
		updates["is_overnight"] = result.IsOvernight
		updates["status"] = models.StatusCompleted
		updates["open_employee_id"] = nil

		if helper.IsOvertime(result.WorkMinutes) {
			log.Printf("attendance %s corrected to %d work minutes, more than a day", record.ID, result.WorkMinutes)
		}
	}

	if len(updates) > 0 {
		if err := models.DB.Model(&record).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "同じ日付とシフト番号の記録が既に存在します"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	var updated models.Attendance
	if err := models.DB.Preload("Employee").First(&updated, "id = ?", record.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func DeleteAttendance(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "IDが必要です"})
		return
	}

	result := models.DB.Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "勤怠記録が見つかりません"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
