package models

type Product struct {
	ID       string  `yaml:"id" json:"productId" validate:"required"`
	Name     string  `yaml:"name" json:"name" validate:"required"`
	Price    int     `yaml:"price" json:"price" validate:"required,gt=0"`
	Category string  `yaml:"category" json:"category" validate:"required"`
	Rating   float64 `yaml:"rating" json:"rating"`
	Image    string  `yaml:"image" json:"image,omitempty"`
}
