package models

type ECommerceEventType string

const (
	ECommerceShowScreen         ECommerceEventType = "showScreenEvent"
	ECommerceShowProductCard    ECommerceEventType = "showProductCardEvent"
	ECommerceShowProductDetails ECommerceEventType = "showProductDetailsEvent"
	ECommerceAddCartItem        ECommerceEventType = "addCartItemEvent"
	ECommerceRemoveCartItem     ECommerceEventType = "removeCartItemEvent"
	ECommerceBeginCheckout      ECommerceEventType = "beginCheckoutEvent"
	ECommercePurchase           ECommerceEventType = "purchaseEvent"
)

type ECommerceAmount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type ECommercePrice struct {
	Amount             ECommerceAmount   `json:"amount"`
	InternalComponents []ECommerceAmount `json:"internalComponents,omitempty"`
}

type ECommerceScreen struct {
	Name           string            `json:"name,omitempty"`
	CategoriesPath []string          `json:"categoriesPath,omitempty"`
	SearchQuery    string            `json:"searchQuery,omitempty"`
	Payload        map[string]string `json:"payload,omitempty"`
}

type ECommerceProduct struct {
	SKU            string            `json:"sku"`
	Name           string            `json:"name,omitempty"`
	CategoriesPath []string          `json:"categoriesPath,omitempty"`
	Payload        map[string]string `json:"payload,omitempty"`
	ActualPrice    *ECommercePrice   `json:"actualPrice,omitempty"`
	OriginalPrice  *ECommercePrice   `json:"originalPrice,omitempty"`
	Promocodes     []string          `json:"promocodes,omitempty"`
}

type ECommerceReferrer struct {
	Type       string           `json:"type,omitempty"`
	Identifier string           `json:"identifier,omitempty"`
	Screen     *ECommerceScreen `json:"screen,omitempty"`
}

type ECommerceCartItem struct {
	Product  ECommerceProduct   `json:"product"`
	Quantity float64            `json:"quantity"`
	Revenue  ECommercePrice     `json:"revenue"`
	Referrer *ECommerceReferrer `json:"referrer,omitempty"`
}

type ECommerceOrder struct {
	OrderID  string              `json:"orderId"`
	Products []ECommerceCartItem `json:"products"`
	Payload  map[string]string   `json:"payload,omitempty"`
}

type ECommerceEvent struct {
	Type     ECommerceEventType `json:"ecommerceEvent"`
	Screen   *ECommerceScreen   `json:"screen,omitempty"`
	Product  *ECommerceProduct  `json:"product,omitempty"`
	Referrer *ECommerceReferrer `json:"referrer,omitempty"`
	CartItem *ECommerceCartItem `json:"cartItem,omitempty"`
	Order    *ECommerceOrder    `json:"order,omitempty"`
}
