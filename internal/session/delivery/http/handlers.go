package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session/provider/redisauth"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/response"
)

// SignIn verifies credentials and opens a session.
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	identity, err := h.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, redisauth.ErrInvalidCredentials) {
			response.ErrorWithStatus(c, 401, err)
			return
		}
		h.l.Errorf(ctx, "session.SignIn: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, h.newSignedInResp(identity))
}

// SignUp creates an account. The new account is signed in immediately.
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	identity, err := h.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, redisauth.ErrEmailTaken) {
			response.ErrorWithStatus(c, 409, err)
			return
		}
		if errors.Is(err, redisauth.ErrInvalidCredentials) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "session.SignUp: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, h.newSignedInResp(identity))
}

// SignOut closes the current session.
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.provider.SignOut(ctx); err != nil {
		h.l.Errorf(ctx, "session.SignOut: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, h.newSessionResp())
}

// Session returns the gate's current state and identity.
func (h *handler) Session(c *gin.Context) {
	response.OK(c, h.newSessionResp())
}
