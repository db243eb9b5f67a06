package http

import (
	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/response"
)

// View returns the requested page and the view mode it resolves to under the
// current session state.
func (h *handler) View(c *gin.Context) {
	response.OK(c, h.newViewResp())
}

// Navigate records a navigation request and returns the resolved view. The
// session-driven redirects may override the requested page.
func (h *handler) Navigate(c *gin.Context) {
	req, err := h.processNavigateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.nav.Goto(req.page())
	response.OK(c, h.newViewResp())
}
