package repository

import "spreadcal/entities"

// ProductRepository stores products users enter by hand.
type ProductRepository interface {
	Create(p *entities.Product) error
	ListByUser(uid string) ([]entities.Product, error)
	FindByID(id, uid string) (*entities.Product, error)
}
