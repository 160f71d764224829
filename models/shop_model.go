package models

type Shop struct {
	ID       string    `yaml:"id" json:"shopId"`
	Name     string    `yaml:"name" json:"name" validate:"required"`
	Image    string    `yaml:"image" json:"image,omitempty"`
	Category string    `yaml:"category" json:"category" validate:"required"`
	Rating   float64   `yaml:"rating" json:"rating"`
	Distance string    `yaml:"distance" json:"distance"`
	Address  string    `yaml:"address" json:"address"`
	Timing   string    `yaml:"timing" json:"timing,omitempty"`
	IsOpen   bool      `yaml:"isOpen" json:"isOpen"`
	Products []Product `yaml:"products" json:"products"`
	Reviews  []Review  `yaml:"reviews" json:"reviews"`
}

type Review struct {
	User    string `yaml:"user" json:"user"`
	Rating  int    `yaml:"rating" json:"rating" validate:"min=1,max=5"`
	Date    string `yaml:"date" json:"date"`
	Comment string `yaml:"comment" json:"comment"`
}

// CategoryOption is one entry of the category selector, "all" excluded.
type CategoryOption struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}
