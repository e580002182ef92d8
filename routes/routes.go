package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	attendancecontroller "github.com/raveogahee/timecard/controllers/attendance"
	authcontroller "github.com/raveogahee/timecard/controllers/auth"
	employeecontroller "github.com/raveogahee/timecard/controllers/employee"
	reportcontroller "github.com/raveogahee/timecard/controllers/report"
	"github.com/raveogahee/timecard/middlewares"
)

func SetupRouter(allowOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")
	{
		v1.GET("/employees", employeecontroller.GetActiveEmployees)
		v1.POST("/attendance/clock-in", attendancecontroller.ClockIn)
		v1.POST("/attendance/clock-out", attendancecontroller.ClockOut)
		v1.GET("/attendance/status", attendancecontroller.GetStatus)
		v1.GET("/attendance/today", attendancecontroller.GetToday)
		v1.POST("/auth/verify", authcontroller.Verify)

		admin := v1.Group("/admin")
		admin.Use(middlewares.AuthMiddleware())
		{
			admin.GET("/employees", employeecontroller.GetEmployees)
			admin.POST("/employees", employeecontroller.CreateEmployee)
			admin.PUT("/employees", employeecontroller.UpdateEmployee)
			admin.DELETE("/employees", employeecontroller.DeleteEmployee)
			admin.GET("/attendance", attendancecontroller.ListAttendance)
			admin.PUT("/attendance", attendancecontroller.UpdateAttendance)
			admin.DELETE("/attendance", attendancecontroller.DeleteAttendance)
			admin.GET("/reports", reportcontroller.GetMonthlyReport)
			admin.POST("/auth/change-password", authcontroller.ChangePassword)
		}
	}

	return router
}
