package services

import (
	"errors"
	"fmt"
	"time"

	"prospect-outreach/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrHistoryDisabled is returned when no database is configured
var ErrHistoryDisabled = errors.New("generation history is disabled")

// DefaultHistoryLimit is used when the caller gives no limit
const DefaultHistoryLimit = 20

type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a history service; a nil db disables it
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Enabled reports whether runs are being stored
func (s *HistoryService) Enabled() bool {
	return s != nil && s.db != nil
}

// Record stores the outcome of a finished pipeline run and returns its ID
func (s *HistoryService) Record(req *models.ProspectRequest) (string, error) {
	if !s.Enabled() {
		return "", ErrHistoryDisabled
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate run id: %w", err)
	}

	entry := models.GenerationLog{
		ID:                    id.String(),
		ProspectName:          req.ProspectName,
		Company:               req.Company,
		EventName:             req.EventName,
		ProspectSummaryStatus: models.SummaryStatus(req.ProspectBackground),
		MySummaryStatus:       models.SummaryStatus(req.MyBackground),
		MessageStatus:         models.MessageStatus(req.FinalMessage),
		FinalMessage:          req.FinalMessage,
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return "", fmt.Errorf("failed to record generation: %w", err)
	}
	return entry.ID, nil
}

// Recent returns the latest runs, newest first
func (s *HistoryService) Recent(limit int) ([]models.GenerationLog, error) {
	if !s.Enabled() {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var runs []models.GenerationLog
	err := s.db.Order("created_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	return runs, nil
}

// Stats aggregates stored outcomes
func (s *HistoryService) Stats() (*models.GenerationStats, error) {
	if !s.Enabled() {
		return nil, ErrHistoryDisabled
	}

	stats := &models.GenerationStats{}
	if err := s.db.Model(&models.GenerationLog{}).Count(&stats.TotalRuns).Error; err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}
	if err := s.db.Model(&models.GenerationLog{}).Where("message_status = ?", models.StatusOK).Count(&stats.SuccessfulMessages).Error; err != nil {
		return nil, fmt.Errorf("failed to count successful messages: %w", err)
	}
	if err := s.db.Model(&models.GenerationLog{}).Where("message_status = ?", models.StatusFailed).Count(&stats.FailedMessages).Error; err != nil {
		return nil, fmt.Errorf("failed to count failed messages: %w", err)
	}
	err := s.db.Model(&models.GenerationLog{}).
		Where("prospect_summary_status = ? OR my_summary_status = ?", models.StatusUnavailable, models.StatusUnavailable).
		Count(&stats.SummaryFallbacks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count summary fallbacks: %w", err)
	}

	var latest []models.GenerationLog
	if err := s.db.Order("created_at DESC").Limit(1).Find(&latest).Error; err == nil && len(latest) > 0 {
		stats.LastRunAt = &latest[0].CreatedAt
	}

	return stats, nil
}
