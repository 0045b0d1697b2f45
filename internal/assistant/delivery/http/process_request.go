package http

import (
	"github.com/gin-gonic/gin"
)

// processQueryReq binds and validates the chat query request body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCatalogReq binds and validates the catalog search request body.
func (h *handler) processCatalogReq(c *gin.Context) (catalogReq, error) {
	var req catalogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processReturnReq binds and validates the return request body.
func (h *handler) processReturnReq(c *gin.Context) (returnReq, error) {
	var req returnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCancelReq binds and validates the cancel request body.
func (h *handler) processCancelReq(c *gin.Context) (cancelReq, error) {
	var req cancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPricingReq binds and validates the pricing quote query params.
func (h *handler) processPricingReq(c *gin.Context) (pricingReq, error) {
	var req pricingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAskReq binds and validates the ask query params.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTokenReq binds and validates the dev token request body.
func (h *handler) processTokenReq(c *gin.Context) (tokenReq, error) {
	var req tokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
