package database

import (
	"github.com/ZJUSCT/CSRANK/internal/database/models"
	"gorm.io/gorm"
)

// Submission audit log
func InsertSubmission(db *gorm.DB, row *models.SubmissionRow) error {
	return db.Create(row).Error
}

func ListSubmissionsByTeam(db *gorm.DB, team string) ([]models.SubmissionRow, error) {
	var rows []models.SubmissionRow
	if err := db.Where("team = ?", team).Order("minute asc, created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func ListAllSubmissions(db *gorm.DB) ([]models.SubmissionRow, error) {
	var rows []models.SubmissionRow
	if err := db.Order("minute asc, created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Rank event history
func InsertRankEvent(db *gorm.DB, row *models.RankEventRow) error {
	return db.Create(row).Error
}

func ListRankEvents(db *gorm.DB) ([]models.RankEventRow, error) {
	var rows []models.RankEventRow
	if err := db.Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
