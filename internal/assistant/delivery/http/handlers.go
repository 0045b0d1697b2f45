package http

import (
	"github.com/gin-gonic/gin"

	"commerce-assistant/internal/assistant"
	"commerce-assistant/pkg/response"
)

// Query godoc
// @Summary     Process a chat query
// @Description Classifies the query into an intent and routes it to the matching handler.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Chat query"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/assistant/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	state := h.uc.ProcessQuery(ctx, req.toInput())
	response.OK(c, newQueryResp(state))
}

// CatalogSearch godoc
// @Summary     Search the product catalog
// @Description Semantic catalog search with detail, inventory and B2B pricing enrichment.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body catalogReq true "Search query"
// @Success     200 {object} model.Result
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Commerce backend unavailable"
// @Router      /api/v1/assistant/catalog/search [POST]
func (h *handler) CatalogSearch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCatalogReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.CatalogSearch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CatalogSearch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, result)
}

// OrderStatus godoc
// @Summary     Get order status
// @Description Reports the order's status and delivery estimate.
// @Tags        Assistant
// @Produce     json
// @Param       order_id path string true "Order ID"
// @Success     200 {object} model.Result
// @Failure     503 {object} response.Resp "Commerce backend unavailable"
// @Router      /api/v1/assistant/order/status/{order_id} [GET]
func (h *handler) OrderStatus(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.uc.OrderStatus(ctx, c.Param("order_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.OrderStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, result)
}

// ReturnRequest godoc
// @Summary     Request a return
// @Description Creates a return request and computes the post-fee refund.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body returnReq true "Return request"
// @Success     200 {object} model.Result
// @Failure     404 {object} response.Resp "Item not in order"
// @Router      /api/v1/assistant/order/return [POST]
func (h *handler) ReturnRequest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReturnReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.ReturnRequest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ReturnRequest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, result)
}

// CancelOrder godoc
// @Summary     Cancel an order
// @Description Validates cancellation eligibility and requests the cancel in the OMS.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body cancelReq true "Cancel request"
// @Success     200 {object} model.Result
// @Failure     503 {object} response.Resp "Commerce backend unavailable"
// @Router      /api/v1/assistant/order/cancel [POST]
func (h *handler) CancelOrder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCancelReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.CancelOrder(ctx, req.OrderID)
	if err != nil {
		h.l.Errorf(ctx, "uc.CancelOrder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, result)
}

// PricingQuote godoc
// @Summary     Get a pricing quote
// @Description Computes a tier-discounted quote for a SKU and quantity.
// @Tags        Assistant
// @Produce     json
// @Param       sku        query string true  "SKU"
// @Param       quantity   query int    false "Quantity (default 1)"
// @Param       tier       query string false "Customer tier"
// @Param       base_price query number false "Base unit price override"
// @Success     200 {object} model.Result
// @Router      /api/v1/assistant/pricing/quote [GET]
func (h *handler) PricingQuote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPricingReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.PricingQuote(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PricingQuote: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, result)
}

// Ask godoc
// @Summary     Ask a policy question
// @Description Answers a free-form question over the retrieved policy documents.
// @Tags        Assistant
// @Produce     json
// @Param       q query string true "Question"
// @Success     200 {object} assistant.AskOutput
// @Failure     502 {object} response.Resp "Text generation failed"
// @Router      /api/v1/assistant/ask [GET]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Ask(ctx, assistant.AskInput{Query: req.Query})
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, out)
}

// IssueToken godoc
// @Summary     Issue a gateway token (dev only)
// @Description Issues a signed HS256 token for the given user and role.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body tokenReq true "Token request"
// @Success     200 {object} tokenResp
// @Router      /api/v1/auth/token [POST]
func (h *handler) IssueToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTokenReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.scope.Generate(req.UserID, req.Role, h.jwtTTL)
	if err != nil {
		h.l.Errorf(ctx, "scope.Generate: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, tokenResp{
		Token:     token,
		ExpiresIn: int(h.jwtTTL.Seconds()),
	})
}
