package repositories

import (
	"time"

	"github.com/coachdesk/triage-go/db"
	"github.com/coachdesk/triage-go/models"
)

type TicketRepo interface {
	Create(record *models.TicketRecord) error
	FindByID(id string) (models.TicketRecord, error)
	ListPaging(page, perPage int) ([]models.TicketRecord, int64, error)
	FindSince(cutoff time.Time) ([]models.TicketRecord, error)
}

type DBTicketRepo struct{}

func (r *DBTicketRepo) Create(record *models.TicketRecord) error {
	return db.DB.Create(record).Error
}

func (r *DBTicketRepo) FindByID(id string) (models.TicketRecord, error) {
	var record models.TicketRecord
	err := db.DB.First(&record, "id = ?", id).Error
	return record, err
}

func (r *DBTicketRepo) ListPaging(page, perPage int) ([]models.TicketRecord, int64, error) {
	var total int64
	if err := db.DB.Model(&models.TicketRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.TicketRecord
	err := db.DB.
		Order("created_at desc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&records).Error
	return records, total, err
}

func (r *DBTicketRepo) FindSince(cutoff time.Time) ([]models.TicketRecord, error) {
	var records []models.TicketRecord
	err := db.DB.Where("created_at >= ?", cutoff).Find(&records).Error
	return records, err
}
