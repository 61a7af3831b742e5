package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"spreadcal/entities"
	"spreadcal/pkg/device/repository"
)

type deviceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DeviceRepository { return &deviceRepo{db} }

// ReplaceAll upserts every chart and deletes rows for ids not in ds, in one
// transaction.
func (r *deviceRepo) ReplaceAll(ds []entities.Device) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(ds) == 0 {
			return tx.Where("1 = 1").Delete(&entities.Device{}).Error
		}
		ids := make([]string, 0, len(ds))
		for _, d := range ds {
			ids = append(ids, d.ID)
		}
		if err := tx.Where("id NOT IN ?", ids).Delete(&entities.Device{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "brand", "kind", "settings", "source", "updated_at"}),
		}).Create(&ds).Error
	})
}

func (r *deviceRepo) List() ([]entities.Device, error) {
	var out []entities.Device
	if err := r.db.Order("display_name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
