package repositoryImp

import (
	"gorm.io/gorm"

	"spreadcal/entities"
	"spreadcal/pkg/product/repository"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }

func (r *productRepo) ListByUser(uid string) ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Where("user_id = ?", uid).Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByID(id, uid string) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
