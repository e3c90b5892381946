package delivery

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/middleware"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
	dev    bool
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase, rdb *redis.Client, dev bool) {
	handler := &AuthHandler{authUC: authUC, dev: dev}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	public := r.Group("/api/auth")
	if rdb != nil {
		// Brute-forceable endpoints get a tighter window. OTP request is
		// deliberately not limited.
		public.POST("/register", middleware.EndpointRateLimit(rdb, middleware.RateLimiterConfig{
			RequestsPerWindow: 10,
			WindowDuration:    time.Hour,
			KeyPrefix:         "ratelimit:register",
		}), handler.Register)
		public.POST("/login", middleware.EndpointRateLimit(rdb, middleware.RateLimiterConfig{
			RequestsPerWindow: 10,
			WindowDuration:    15 * time.Minute,
			KeyPrefix:         "ratelimit:login",
		}), handler.Login)
	} else {
		public.POST("/register", handler.Register)
		public.POST("/login", handler.Login)
	}
	public.POST("/request-otp", handler.RequestOTP)
	public.POST("/verify-otp", handler.VerifyOTP)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	Role     string `json:"role" binding:"required,oneof=employee admin hr"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Register")
		return
	}

	email := strings.ToLower(req.Email)
	user, err := h.authUC.Register(c.Request.Context(), req.Name, email, req.Password, domain.Role(req.Role))
	if err != nil {
		respondError(c, err, "Register", h.dev)
		return
	}

	utils.LogRequest(&email, http.StatusCreated, "Register", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    gin.H{"user": user},
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "Login")
		return
	}

	email := strings.ToLower(req.Email)
	token, user, err := h.authUC.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		respondError(c, err, "Login", h.dev)
		return
	}

	utils.LogRequest(&email, http.StatusOK, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

type RequestOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "RequestOTP")
		return
	}

	email := strings.ToLower(req.Email)
	code, err := h.authUC.RequestOTP(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "RequestOTP", h.dev)
		return
	}

	data := gin.H{}
	if h.dev {
		// Development convenience only; there is no delivery channel.
		data["otp"] = code
	}

	utils.LogRequest(&email, http.StatusOK, "RequestOTP", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully. Check your email/console.",
		"data":    data,
	})
}

type VerifyOTPRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=64"`
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "VerifyOTP")
		return
	}

	email := strings.ToLower(req.Email)
	if err := h.authUC.VerifyOTPAndChangePassword(c.Request.Context(), email, req.OTP, req.NewPassword); err != nil {
		respondError(c, err, "VerifyOTP", h.dev)
		return
	}

	utils.LogRequest(&email, http.StatusOK, "VerifyOTP", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}
