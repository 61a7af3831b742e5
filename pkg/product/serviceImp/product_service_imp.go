package serviceImp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spreadcal/entities"
	"spreadcal/pkg/product"
	"spreadcal/pkg/product/repository"
	"spreadcal/pkg/product/service"
)

type productSvc struct {
	curated *product.Catalog
	repo    repository.ProductRepository
	newID   func() string
}

func New(curated *product.Catalog, repo repository.ProductRepository) service.ProductService {
	return &productSvc{curated: curated, repo: repo, newID: func() string { return "usr_" + uuid.NewString() }}
}

func (s *productSvc) all(uid string) ([]entities.Product, error) {
	out := s.curated.All()
	if uid == "" || s.repo == nil {
		return out, nil
	}
	mine, err := s.repo.ListByUser(uid)
	if err != nil {
		return nil, fmt.Errorf("list user products: %w", err)
	}
	return append(out, mine...), nil
}

func (s *productSvc) All(uid string) ([]entities.Product, error) { return s.all(uid) }

func (s *productSvc) Search(uid, query string) ([]entities.Product, error) {
	items, err := s.all(uid)
	if err != nil {
		return nil, err
	}
	return product.Filter(items, query), nil
}

func (s *productSvc) ByCategory(uid string, c entities.Category) ([]entities.Product, error) {
	items, err := s.all(uid)
	if err != nil {
		return nil, err
	}
	return product.FilterCategory(items, c), nil
}

func (s *productSvc) Get(uid, id string) (*entities.Product, error) {
	if p, ok := s.curated.ByID(id); ok {
		return &p, nil
	}
	if uid == "" || s.repo == nil {
		return nil, fmt.Errorf("%w: %s", service.ErrNotFound, id)
	}
	p, err := s.repo.FindByID(id, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrNotFound, id)
	}
	return p, err
}

func (s *productSvc) CreateCustom(uid string, in service.CustomProduct) (*entities.Product, error) {
	if uid == "" {
		return nil, errors.New("custom products need a signed-in user")
	}
	if s.repo == nil {
		return nil, errors.New("custom products are not enabled")
	}
	p := &entities.Product{
		ID:              s.newID(),
		UserID:          uid,
		Name:            strings.TrimSpace(in.Name),
		Brand:           strings.TrimSpace(in.Brand),
		Category:        in.Category,
		NPK:             strings.TrimSpace(in.NPK),
		ApplicationRate: in.ApplicationRate,
		Source:          entities.SourceUser,
	}
	if p.Category == "" {
		p.Category = entities.CategoryOther
	}
	if err := product.Validate(p); err != nil {
		return nil, err
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}
