// internal/service/notification_service.go
package service

import (
	"context"
	"time"

	"peertrade/internal/domain"
	"peertrade/internal/repository"
)

// NotificationService manages the fire-and-forget user message feed.
type NotificationService interface {
	Create(ctx context.Context, userID int64, message, notificationType string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

type notificationService struct {
	dbExecutor       repository.DBExecutor
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(dbExecutor repository.DBExecutor, notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		dbExecutor:       dbExecutor,
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) Create(ctx context.Context, userID int64, message, notificationType string) (*domain.Notification, error) {
	notification := &domain.Notification{
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notificationRepo.Create(ctx, s.dbExecutor, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, s.dbExecutor, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, s.dbExecutor, userID)
}
