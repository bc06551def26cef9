package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shopx/backend/internal/domain/cart"
	"github.com/shopx/backend/internal/domain/order"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// EntryResponse represents one cart line in API responses. UnitPrice
// is the price locked when the product was first added, not the
// current catalog price.
type EntryResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ImageURL    string          `json:"image_url"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	AddedAt     time.Time       `json:"added_at"`
}

// CartResponse represents the full cart in API responses
type CartResponse struct {
	Items []EntryResponse `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// OrderItemResponse represents one order line in API responses
type OrderItemResponse struct {
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ImageURL        string          `json:"image_url"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

// ToEntryResponse converts a domain cart entry
func ToEntryResponse(e *cart.Entry) EntryResponse {
	response := EntryResponse{
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		UnitPrice: e.LockedPrice,
		Subtotal:  e.Subtotal(),
		AddedAt:   e.CreatedAt,
	}
	if e.Product != nil {
		response.ProductName = e.Product.Name
		response.ImageURL = e.Product.ImageURL
	}
	return response
}

// ToCartResponse converts a cart snapshot, totalling locked prices
func ToCartResponse(entries []cart.Entry) CartResponse {
	response := CartResponse{
		Items: make([]EntryResponse, 0, len(entries)),
		Total: decimal.Zero,
	}
	for i := range entries {
		item := ToEntryResponse(&entries[i])
		response.Items = append(response.Items, item)
		response.Total = response.Total.Add(item.Subtotal)
	}
	return response
}

// ToOrderResponse converts a domain order
func ToOrderResponse(o *order.Order) OrderResponse {
	response := OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Items:     make([]OrderItemResponse, 0, len(o.Items)),
		CreatedAt: o.CreatedAt,
	}
	for i := range o.Items {
		item := &o.Items[i]
		itemResponse := OrderItemResponse{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		}
		if item.Product != nil {
			itemResponse.ProductName = item.Product.Name
			itemResponse.ImageURL = item.Product.ImageURL
		}
		response.Items = append(response.Items, itemResponse)
	}
	return response
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}
