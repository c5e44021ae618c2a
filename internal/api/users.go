package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"zynta_referral/internal/model"
	"zynta_referral/internal/service"
	"zynta_referral/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type userRoutes struct {
	us service.UserServiceI
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI) {
	r := &userRoutes{us: us}

	handler.GET("/users", r.ListUsers)
	handler.GET("/users/", r.ListUsers)
	handler.GET("/users/:referral_code", r.GetUserByReferralCode)
	handler.POST("/register", r.RegisterUser)
}

type UserResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ReferralCode string `json:"referralCode"`
	Points       int    `json:"points"`
	Referrals    int    `json:"referrals"`
}

func newUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ReferralCode: u.ReferralCode,
		Points:       u.Points,
		Referrals:    u.Referrals,
	}
}

func (r *userRoutes) ListUsers(c *gin.Context) {
	log := logger.Logger()

	users, err := r.us.ListUsers(c.Request.Context())
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		respondServiceError(c, err)
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = newUserResponse(u)
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"data":  out,
		"count": len(out),
	})
}

func (r *userRoutes) GetUserByReferralCode(c *gin.Context) {
	log := logger.Logger()

	code := c.Param("referral_code")
	user, err := r.us.GetUserByReferralCode(c.Request.Context(), code)
	if err != nil {
		log.Info("failed to get user by referral code",
			zap.String("referral_code", code),
			zap.Error(err))
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"data": newUserResponse(user),
	})
}

// RegisterUserRequest fields are decoded loosely: a value of the wrong JSON
// type is treated as missing, so it fails the same required-field check as
// an absent one.
type RegisterUserRequest struct {
	Name         any `json:"name"`
	Email        any `json:"email"`
	ReferralCode any `json:"referralCode"`
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

type ReferrerResponse struct {
	Name          string `json:"name"`
	PointsAwarded int    `json:"pointsAwarded"`
}

type RegisterUserResponse struct {
	User     UserResponse      `json:"user"`
	Referrer *ReferrerResponse `json:"referrer"`
}

func (r *userRoutes) RegisterUser(c *gin.Context) {
	log := logger.Logger()

	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Info("failed to bind request", zap.Error(err))
		respondError(c, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	reg, err := r.us.RegisterUser(c.Request.Context(), model.NewUser{
		Name:         stringField(req.Name),
		Email:        stringField(req.Email),
		ReferralCode: stringField(req.ReferralCode),
	})
	if err != nil {
		log.Info("failed to register user", zap.Error(err))
		respondServiceError(c, err)
		return
	}

	out := RegisterUserResponse{
		User: newUserResponse(&reg.User),
	}
	message := "Registration successful!"
	if reg.Referrer != nil {
		out.Referrer = &ReferrerResponse{
			Name:          reg.Referrer.Name,
			PointsAwarded: reg.Referrer.PointsAwarded,
		}
		message = fmt.Sprintf("Registration successful! %s earned %d points.", reg.Referrer.Name, reg.Referrer.PointsAwarded)
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"message": message,
		"data":    out,
	})
}
