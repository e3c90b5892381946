package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/middleware"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type LeaveHandler struct {
	leaveUC domain.LeaveUseCase
	dev     bool
}

func NewLeaveHandler(r *gin.Engine, leaveUC domain.LeaveUseCase, jwtManager *utils.JWTManager, dev bool) {
	handler := &LeaveHandler{leaveUC: leaveUC, dev: dev}

	leaves := r.Group("/api/leaves")
	leaves.Use(middleware.RequireAuth(jwtManager))
	{
		leaves.POST("", handler.Create)
		leaves.GET("/my-requests", handler.MyRequests)
		leaves.GET("/all", middleware.RequireElevated(), handler.AllRequests)
		leaves.PATCH("/:id/status", middleware.RequireElevated(), handler.UpdateStatus)
	}
}

type CreateLeaveRequest struct {
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required,max=500"`
}

func (h *LeaveHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateLeave")
		return
	}

	lr, err := h.leaveUC.CreateLeave(c.Request.Context(), user.ID, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		respondError(c, err, "CreateLeave", h.dev)
		return
	}

	utils.LogRequest(&user.Email, http.StatusCreated, "CreateLeave", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Leave request submitted successfully",
		"data":    gin.H{"leaveRequest": lr},
	})
}

func (h *LeaveHandler) MyRequests(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var status *domain.LeaveStatus
	if s := c.Query("status"); s != "" {
		ls := domain.LeaveStatus(s)
		status = &ls
	}

	requests, err := h.leaveUC.MyRequests(c.Request.Context(), user.ID, status)
	if err != nil {
		respondError(c, err, "MyLeaveRequests", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"leaveRequests": requests, "count": len(requests)},
	})
}

func (h *LeaveHandler) AllRequests(c *gin.Context) {
	var filter domain.LeaveFilter
	if s := c.Query("status"); s != "" {
		ls := domain.LeaveStatus(s)
		filter.Status = &ls
	}
	if userID := c.Query("userId"); userID != "" {
		filter.UserID = &userID
	}

	requests, err := h.leaveUC.AllRequests(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "AllLeaveRequests", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"leaveRequests": requests, "count": len(requests)},
	})
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Declined"`
}

func (h *LeaveHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid leave request id"})
		return
	}

	var req UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateLeaveStatus")
		return
	}

	lr, err := h.leaveUC.UpdateStatus(c.Request.Context(), uint(id), domain.LeaveStatus(req.Status))
	if err != nil {
		respondError(c, err, "UpdateLeaveStatus", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Leave request status updated successfully",
		"data":    gin.H{"leaveRequest": lr},
	})
}
