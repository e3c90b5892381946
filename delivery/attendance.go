package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/middleware"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type AttendanceHandler struct {
	attUC domain.AttendanceUseCase
	dev   bool
}

func NewAttendanceHandler(r *gin.Engine, attUC domain.AttendanceUseCase, jwtManager *utils.JWTManager, dev bool) {
	handler := &AttendanceHandler{attUC: attUC, dev: dev}

	attendance := r.Group("/api/attendance")
	attendance.Use(middleware.RequireAuth(jwtManager))
	{
		attendance.POST("/check-in", handler.CheckIn)
		attendance.POST("/check-out", handler.CheckOut)
		attendance.GET("/today", handler.TodayStatus)
		attendance.GET("/my-records", handler.MyRecords)
		attendance.GET("/all", middleware.RequireElevated(), handler.AllRecords)
	}
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	att, err := h.attUC.CheckIn(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "CheckIn", h.dev)
		return
	}

	utils.LogRequest(&user.Email, http.StatusCreated, "CheckIn", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Checked in successfully",
		"data":    gin.H{"attendance": att},
	})
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	att, err := h.attUC.CheckOut(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "CheckOut", h.dev)
		return
	}

	utils.LogRequest(&user.Email, http.StatusOK, "CheckOut", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Checked out successfully",
		"data":    gin.H{"attendance": att},
	})
}

func (h *AttendanceHandler) TodayStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	status, err := h.attUC.TodayStatus(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "TodayStatus", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": status})
}

func (h *AttendanceHandler) MyRecords(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	records, err := h.attUC.MyRecords(c.Request.Context(), user.ID, limit)
	if err != nil {
		respondError(c, err, "MyRecords", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"attendance": records, "count": len(records)},
	})
}

func (h *AttendanceHandler) AllRecords(c *gin.Context) {
	var filter domain.AttendanceFilter
	if userID := c.Query("userId"); userID != "" {
		filter.UserID = &userID
	}
	if date := c.Query("date"); date != "" {
		filter.Date = &date
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	records, err := h.attUC.AllRecords(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "AllRecords", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"attendance": records, "count": len(records)},
	})
}
