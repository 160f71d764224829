package models

// CartItem is one line of the cart. The same product sold by two different
// shops is two distinct lines, so the key is the (ProductID, ShopID) pair.
type CartItem struct {
	Product  Product `json:"product" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	ShopID   string  `json:"shopId"`
	ShopName string  `json:"shopName"`
}
