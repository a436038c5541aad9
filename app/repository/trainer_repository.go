package repository

import (
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
)

// trainerRepository implements the TrainerRepository interface
type trainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository creates a new trainer application repository instance
func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(app *models.TrainerApplication) error {
	return r.db.Create(app).Error
}

func (r *trainerRepository) GetByID(id uint) (*models.TrainerApplication, error) {
	var app models.TrainerApplication
	err := r.db.First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *trainerRepository) ListByStatus(status string, offset, limit int) ([]models.TrainerApplication, error) {
	var apps []models.TrainerApplication
	query := r.db.Order("created_at DESC").Offset(offset).Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&apps).Error
	return apps, err
}

func (r *trainerRepository) Update(app *models.TrainerApplication) error {
	return r.db.Save(app).Error
}

func (r *trainerRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&models.TrainerApplication{}).
		Where("status = ?", models.TrainerStatusPending).Count(&count).Error
	return count, err
}
