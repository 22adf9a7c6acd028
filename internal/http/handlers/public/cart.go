package public

import (
	"encoding/json"

	"github.com/techmarket-api/internal/http/handlers/shared"
	"github.com/techmarket-api/internal/http/response"
	"github.com/techmarket-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求，quantity 缺省为 1
type AddCartItemRequest struct {
	ProductID json.Number `json:"product_id"`
	Quantity  json.Number `json:"quantity"`
}

// UpdateCartItemRequest 修改数量请求
type UpdateCartItemRequest struct {
	Quantity json.Number `json:"quantity"`
}

// GetCart 获取用户购物车
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := shared.ParamID(c, "user_id")
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := shared.ParamID(c, "user_id")
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	rawProductID := shared.NumberString(req.ProductID)
	if rawProductID == "" {
		respondServiceError(c, shared.RequiredField("product_id"))
		return
	}
	productID, err := service.ParseID(rawProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	quantity := service.DefaultAddQuantity
	if raw := shared.NumberString(req.Quantity); raw != "" {
		quantity, err = service.ParseQuantity(raw)
		if err != nil {
			respondServiceError(c, err)
			return
		}
	}

	item, err := h.CartService.AddItem(userID, productID, quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, "item added to cart", item)
}

// UpdateCartItem 修改购物车项数量，0 表示删除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := shared.ParamID(c, "user_id")
	if !ok {
		return
	}
	productID, ok := shared.ParamID(c, "product_id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	raw := shared.NumberString(req.Quantity)
	if raw == "" {
		respondServiceError(c, shared.RequiredField("quantity"))
		return
	}
	quantity, err := service.ParseQuantity(raw)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := h.CartService.UpdateQuantity(userID, productID, quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	msg := "cart item updated"
	if result.Removed {
		msg = "item removed from cart"
	}
	response.SuccessWithMsg(c, msg, result)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := shared.ParamID(c, "user_id")
	if !ok {
		return
	}
	productID, ok := shared.ParamID(c, "product_id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(userID, productID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "item removed from cart", gin.H{"product_id": productID})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := shared.ParamID(c, "user_id")
	if !ok {
		return
	}
	removed, err := h.CartService.ClearCart(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "cart cleared", gin.H{"removed_items": removed})
}
