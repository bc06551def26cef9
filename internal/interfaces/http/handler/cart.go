package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cartapp "github.com/shopx/backend/internal/application/cart"
)

// IdempotencyKeyHeader carries the client-chosen checkout dedup key
const IdempotencyKeyHeader = "Idempotency-Key"

// CartHandler handles cart and order HTTP requests
type CartHandler struct {
	BaseHandler
	cartService     *cartapp.CartService
	checkoutService *cartapp.CheckoutService
	orderService    *cartapp.OrderService
	receiptService  *cartapp.ReceiptService
}

// NewCartHandler creates a new cart handler. receiptService may be nil
// when PDF rendering is not configured.
func NewCartHandler(
	cartService *cartapp.CartService,
	checkoutService *cartapp.CheckoutService,
	orderService *cartapp.OrderService,
	receiptService *cartapp.ReceiptService,
) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		orderService:    orderService,
		receiptService:  receiptService,
	}
}

// AddItem godoc
// @Summary      Add a product to the cart
// @Description  Adds a product at its current price; repeat adds accumulate quantity at the originally locked price
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request body cartapp.AddItemRequest true "Product and quantity"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /cart [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Item added to cart", gin.H{"cart": cart})
}

// GetCart godoc
// @Summary      View the cart
// @Description  Lists the cart's entries at their locked prices; an empty cart is a normal response
// @Tags         cart
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.cartService.ListItems(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Cart", gin.H{"cart": cart})
}

// RemoveItem godoc
// @Summary      Remove a product from the cart
// @Description  Removes the product's whole entry regardless of quantity
// @Tags         cart
// @Produce      json
// @Param        productId path string true "Product ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /cart/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Item removed from cart", gin.H{"cart": cart})
}

// PlaceOrder godoc
// @Summary      Place an order
// @Description  Atomically converts the cart into an order at the locked prices and empties the cart. An optional Idempotency-Key header rejects accidental replays.
// @Tags         cart
// @Produce      json
// @Param        Idempotency-Key header string false "Client-chosen dedup key"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]interface{}
// @Failure      409 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /cart/place-order [post]
func (h *CartHandler) PlaceOrder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	idempotencyKey := c.GetHeader(IdempotencyKeyHeader)

	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), userID, idempotencyKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Order placed", gin.H{"order": order})
}

// OrderHistory godoc
// @Summary      Own order history
// @Description  Lists the caller's orders, newest first; no orders yet is a normal response
// @Tags         cart
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /cart/order-history [get]
func (h *CartHandler) OrderHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orderService.GetOwnOrders(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Order history", gin.H{"orders": orders})
}

// AllOrderHistory godoc
// @Summary      All orders (admin)
// @Description  Lists every order in the system, newest first
// @Tags         cart
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /cart/all-order-history [get]
func (h *CartHandler) AllOrderHistory(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "All orders", gin.H{"orders": orders})
}

// Receipt godoc
// @Summary      Download an order receipt
// @Description  Renders a PDF receipt for the order; owner or admin only
// @Tags         cart
// @Produce      application/pdf
// @Param        id path string true "Order ID"
// @Success      200 {file} binary
// @Failure      403 {object} map[string]interface{}
// @Failure      404 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /cart/order-history/{id}/receipt [get]
func (h *CartHandler) Receipt(c *gin.Context) {
	if h.receiptService == nil {
		h.Error(c, http.StatusNotImplemented, "RECEIPT_UNAVAILABLE", "Receipt rendering is not configured")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	pdf, err := h.receiptService.RenderReceipt(c.Request.Context(), orderID, userID, isAdmin(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+orderID.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
