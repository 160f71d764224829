package models

import "time"

// DeliveryAddress is the address block collected during checkout.
type DeliveryAddress struct {
	StreetAddress        string `json:"streetAddress"`
	City                 string `json:"city"`
	State                string `json:"state"`
	ZipCode              string `json:"zipCode"`
	Phone                string `json:"phone"`
	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
}

// Order is the confirmation record produced when a checkout reaches success.
type Order struct {
	ID            string          `json:"orderId"`
	Items         []CartItem      `json:"items"`
	Subtotal      int             `json:"subtotal"`
	DeliveryFee   int             `json:"deliveryFee"`
	Total         int             `json:"totalAmount"`
	Address       DeliveryAddress `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	PlacedAt      time.Time       `json:"placedAt"`
}

// ShopRegistration is a pending "Register Your Shop" submission.
type ShopRegistration struct {
	ID           string    `json:"registrationId"`
	ShopName     string    `json:"shopName"`
	OwnerName    string    `json:"ownerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Description  string    `json:"description,omitempty"`
	OpeningHours string    `json:"openingHours,omitempty"`
	Category     string    `json:"category"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
