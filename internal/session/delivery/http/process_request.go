package http

import (
	"github.com/gin-gonic/gin"
)

type credentialsReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// processCredentialsReq binds and validates the sign-in or sign-up body.
func (h *handler) processCredentialsReq(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
