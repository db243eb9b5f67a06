package http

import (
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/router"
)

type viewResp struct {
	Page router.Page     `json:"page"`
	Mode router.ViewMode `json:"mode"`
}

func (h *handler) newViewResp() viewResp {
	return viewResp{
		Page: h.nav.Current(),
		Mode: h.nav.Mode(),
	}
}
