package helpers

import (
	"net/http"

	"github.com/leekchan/accounting"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopspring/decimal"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
	CartCountKey     contextKey = "cart_count"
)

var priceFormatter = accounting.Accounting{Symbol: "$", Precision: 2}

func FormatPrice(amount decimal.Decimal) string {
	return priceFormatter.FormatMoneyDecimal(amount)
}

// GetBaseData merges the per-request context values every page needs into the
// page-specific template data.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Back Office"
	}
	pageSpecificData["IsLoggedIn"] = false
	pageSpecificData["IsAdmin"] = false
	pageSpecificData["CartCount"] = 0

	if count, ok := r.Context().Value(CartCountKey).(int); ok {
		pageSpecificData["CartCount"] = count
	}

	if user, ok := r.Context().Value(ContextKeyUser).(*models.User); ok && user != nil {
		pageSpecificData["User"] = user
		pageSpecificData["IsLoggedIn"] = true
		pageSpecificData["IsAdmin"] = user.Role == models.RoleAdmin
	}

	if status := r.URL.Query().Get("status"); status != "" {
		pageSpecificData["MessageStatus"] = status
	}
	if msg := r.URL.Query().Get("message"); msg != "" {
		pageSpecificData["Message"] = msg
	}

	return pageSpecificData
}
