package http

import (
	"github.com/gin-gonic/gin"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
)

// --- Request DTOs ---

type selectVariantReq struct {
	Variant string `json:"variant" binding:"required,oneof=article video"`
}

func (r selectVariantReq) variant() model.Variant {
	return model.Variant(r.Variant)
}

type updateFieldReq struct {
	Name  string `json:"name"  binding:"required"`
	Value string `json:"value"`
}

type beginEditReq struct {
	Collection string `json:"collection" binding:"required,oneof=articles videos"`
	ID         string `json:"id"         binding:"required"`
}

type removeReq struct {
	Collection string `json:"collection" binding:"required,oneof=articles videos"`
	ID         string `json:"id"         binding:"required"`
	Confirmed  bool   `json:"confirmed"`
}

// processSelectVariantReq binds and validates the variant switch body.
func (h *handler) processSelectVariantReq(c *gin.Context) (selectVariantReq, error) {
	var req selectVariantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateFieldReq binds and validates the field update body.
func (h *handler) processUpdateFieldReq(c *gin.Context) (updateFieldReq, error) {
	var req updateFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processBeginEditReq binds and validates the edit request body.
func (h *handler) processBeginEditReq(c *gin.Context) (beginEditReq, error) {
	var req beginEditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRemoveReq binds and validates the delete request body.
func (h *handler) processRemoveReq(c *gin.Context) (removeReq, error) {
	var req removeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
