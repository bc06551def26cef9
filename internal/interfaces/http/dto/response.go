// Package dto defines the HTTP response envelope and error mapping.
//
// Every response is a flat JSON object carrying `success` and `message`
// alongside the payload fields, e.g.
//
//	{"success": true, "message": "Item added to cart", "cart": {...}}
//	{"success": false, "message": "Product not found", "code": "NOT_FOUND"}
package dto

import "github.com/gin-gonic/gin"

// Envelope builds a success response, merging the payload fields into
// the top level of the object.
func Envelope(message string, payload gin.H) gin.H {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range payload {
		if k == "success" || k == "message" {
			continue
		}
		body[k] = v
	}
	return body
}

// ErrorEnvelope builds an error response carrying the machine-readable
// error code next to the human-readable message.
func ErrorEnvelope(code, message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
		"code":    code,
	}
}

// PaginationMeta describes a page of a larger result set
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
