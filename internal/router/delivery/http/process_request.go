package http

import (
	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/router"
)

type navigateReq struct {
	Page string `json:"page" binding:"required,oneof=home auth admin"`
}

func (r navigateReq) page() router.Page {
	return router.Page(r.Page)
}

// processNavigateReq binds and validates the navigation body.
func (h *handler) processNavigateReq(c *gin.Context) (navigateReq, error) {
	var req navigateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
