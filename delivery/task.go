package delivery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/middleware"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type TaskHandler struct {
	taskUC domain.TaskUseCase
	dev    bool
}

func NewTaskHandler(r *gin.Engine, taskUC domain.TaskUseCase, jwtManager *utils.JWTManager, dev bool) {
	handler := &TaskHandler{taskUC: taskUC, dev: dev}

	tasks := r.Group("/api/tasks")
	tasks.Use(middleware.RequireAuth(jwtManager))
	{
		tasks.POST("", handler.Create)
		tasks.GET("", handler.List)
		tasks.GET("/:id", handler.GetByID)
		tasks.PATCH("/:id", handler.UpdateStatus)
		tasks.DELETE("/:id", middleware.RequireElevated(), handler.Delete)
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "CreateTask")
		return
	}

	task, err := h.taskUC.CreateTask(c.Request.Context(), user, req.Title, req.Description, req.DueDate, req.AssignedTo)
	if err != nil {
		respondError(c, err, "CreateTask", h.dev)
		return
	}

	utils.LogRequest(&user.Email, http.StatusCreated, "CreateTask", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"data":    gin.H{"task": task},
	})
}

func (h *TaskHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var filter domain.TaskFilter
	if s := c.Query("status"); s != "" {
		ts := domain.TaskStatus(s)
		filter.Status = &ts
	}
	if assignee := c.Query("assignedTo"); assignee != "" {
		filter.AssignedTo = &assignee
	}

	tasks, err := h.taskUC.GetTasks(c.Request.Context(), user, filter)
	if err != nil {
		respondError(c, err, "GetTasks", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"tasks": tasks, "count": len(tasks)},
	})
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid task id"})
		return
	}

	task, err := h.taskUC.GetTaskByID(c.Request.Context(), user, uint(id))
	if err != nil {
		respondError(c, err, "GetTaskByID", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"task": task}})
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof='To Do' 'In Progress' 'Done'"`
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid task id"})
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "UpdateTaskStatus")
		return
	}

	task, err := h.taskUC.UpdateStatus(c.Request.Context(), user, uint(id), domain.TaskStatus(req.Status))
	if err != nil {
		respondError(c, err, "UpdateTaskStatus", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task status updated successfully",
		"data":    gin.H{"task": task},
	})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid task id"})
		return
	}

	if err := h.taskUC.DeleteTask(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err, "DeleteTask", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}
