package api

import (
	"errors"
	"net/http"

	"zynta_referral/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInternalError      = "Internal server error"
	msgSomethingWentWrong = "Something went wrong!"
	msgEndpointNotFound   = "API endpoint not found"
)

// failure is the client-visible form of a service error.
type failure struct {
	status  int
	message string
}

var failures = []struct {
	err error
	failure
}{
	{service.ErrNameRequired, failure{http.StatusBadRequest, "Name is required and must be a non-empty string"}},
	{service.ErrEmailRequired, failure{http.StatusBadRequest, "Email is required and must be a non-empty string"}},
	{service.ErrInvalidEmail, failure{http.StatusBadRequest, "Please provide a valid email address"}},
	{service.ErrEmailAlreadyRegistered, failure{http.StatusBadRequest, "Email already registered"}},
	{service.ErrInvalidReferralCode, failure{http.StatusBadRequest, "Invalid referral code"}},
	{service.ErrReferralCodeRequired, failure{http.StatusBadRequest, "Referral code is required"}},
	{service.ErrUserNotFound, failure{http.StatusNotFound, "User not found with this referral code"}},
}

func classify(err error) failure {
	for _, f := range failures {
		if errors.Is(err, f.err) {
			return f.failure
		}
	}
	return failure{http.StatusInternalServerError, msgInternalError}
}

func respondSuccess(c *gin.Context, status int, body gin.H) {
	body["success"] = true
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

func respondServiceError(c *gin.Context, err error) {
	f := classify(err)
	respondError(c, f.status, f.message)
}
