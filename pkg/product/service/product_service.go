package service

import (
	"errors"

	"spreadcal/entities"
)

var ErrNotFound = errors.New("product not found")

// ProductService answers catalog queries for one user: the curated list plus
// that user's own products.
type ProductService interface {
	All(uid string) ([]entities.Product, error)
	Search(uid, query string) ([]entities.Product, error)
	ByCategory(uid string, c entities.Category) ([]entities.Product, error)
	Get(uid, id string) (*entities.Product, error)
	CreateCustom(uid string, in CustomProduct) (*entities.Product, error)
}

type CustomProduct struct {
	Name            string                   `json:"name"`
	Brand           string                   `json:"brand"`
	Category        entities.Category        `json:"category"`
	NPK             string                   `json:"npk"`
	ApplicationRate entities.ApplicationRate `json:"application_rate"`
}
