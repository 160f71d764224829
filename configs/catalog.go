package configs

import (
	_ "embed"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/sandeshcse/shopnearme/models"
)

//go:embed shops.yaml
var shopsYAML []byte

// CatalogData is the static shop directory. It is read-only after startup;
// every component shares the same instance.
type CatalogData struct {
	Categories []models.CategoryOption `yaml:"categories"`
	Shops      []models.Shop           `yaml:"shops"`
}

func LoadCatalog() *CatalogData {
	var data CatalogData
	if err := yaml.Unmarshal(shopsYAML, &data); err != nil {
		log.Fatal("Error loading shop catalog: ", err)
	}
	if len(data.Shops) == 0 {
		log.Fatal("Shop catalog is empty")
	}
	return &data
}
