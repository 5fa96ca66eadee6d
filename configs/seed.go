package configs

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
)

//go:embed menu.yaml
var menuYAML []byte

//go:embed offers.yaml
var offersYAML []byte

// LoadMenu parses the embedded menu catalog.
func LoadMenu() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := yaml.Unmarshal(menuYAML, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadOffers parses the embedded offer catalog.
func LoadOffers() ([]entity.Offer, error) {
	var offers []entity.Offer
	if err := yaml.Unmarshal(offersYAML, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}
