package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/middleware"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type UserHandler struct {
	userUC domain.UserUseCase
	dev    bool
}

func NewUserHandler(r *gin.Engine, userUC domain.UserUseCase, jwtManager *utils.JWTManager, dev bool) {
	handler := &UserHandler{userUC: userUC, dev: dev}

	users := r.Group("/api/users")
	users.Use(middleware.RequireAuth(jwtManager))
	{
		users.GET("/profile", handler.Profile)
		users.GET("", middleware.RequireElevated(), handler.List)
		users.GET("/:id", middleware.RequireSelfOrElevated("id"), handler.GetByID)
	}
}

func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	profile, err := h.userUC.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, "GetProfile", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": profile}})
}

func (h *UserHandler) List(c *gin.Context) {
	var role *domain.Role
	if r := c.Query("role"); r != "" {
		dr := domain.Role(r)
		if !dr.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": domain.ErrInvalidRole.Error()})
			return
		}
		role = &dr
	}

	users, err := h.userUC.GetAllUsers(c.Request.Context(), role)
	if err != nil {
		respondError(c, err, "GetAllUsers", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"users": users, "count": len(users)},
	})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userUC.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "GetUserByID", h.dev)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": user}})
}
