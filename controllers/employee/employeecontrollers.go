package employeecontroller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raveogahee/timecard/models"
	"gorm.io/gorm"
)

type createInput struct {
	Name string `json:"name"`
}

type updateInput struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

func findEmployees(includeInactive bool) ([]models.Employee, error) {
	query := models.DB.Order("name")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	employees := []models.Employee{}
	err := query.Find(&employees).Error
	return employees, err
}

// GetActiveEmployees backs the punch screen.
func GetActiveEmployees(c *gin.Context) {
	employees, err := findEmployees(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func GetEmployees(c *gin.Context) {
	employees, err := findEmployees(c.Query("include_inactive") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func CreateEmployee(c *gin.Context) {
	var input createInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "名前が必要です"})
		return
	}

	employee := models.Employee{Name: strings.TrimSpace(input.Name), IsActive: true}
	if err := models.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context) {
	var input updateInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "IDが必要です"})
		return
	}

	var employee models.Employee
	if err := models.DB.First(&employee, "id = ?", input.ID).Error; err != nil {
		respondLookupError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "名前が必要です"})
			return
		}
		updates["name"] = name
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := models.DB.Model(&employee).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	respondReloaded(c, employee.ID)
}

// DeleteEmployee deactivates by default. permanent=true removes the
// employee together with their attendance and punch history, and is only
// allowed once the employee is inactive.
func DeleteEmployee(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "IDが必要です"})
		return
	}

	var employee models.Employee
	if err := models.DB.First(&employee, "id = ?", id).Error; err != nil {
		respondLookupError(c, err)
		return
	}

	if c.Query("permanent") != "true" {
		if err := models.DB.Model(&employee).Update("is_active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		respondReloaded(c, employee.ID)
		return
	}

	if employee.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "有効な従業員は完全削除できません。先に無効化してください。"})
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.PunchLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&employee).Error
	})
	if err != nil {
		log.Printf("delete employee %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "完全に削除しました"})
}

func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "従業員が見つかりません"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func respondReloaded(c *gin.Context, id string) {
	var employee models.Employee
	if err := models.DB.First(&employee, "id = ?", id).Error; err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}
