package service

import (
	"context"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/repository"
)

type historyService struct {
	chat    repository.ChatRepo
	targets repository.TargetRepo
}

func NewHistoryService(chat repository.ChatRepo, targets repository.TargetRepo) HistoryService {
	return &historyService{chat: chat, targets: targets}
}

func (s *historyService) Messages(ctx context.Context, userID string, mode domain.Mode) ([]*domain.ChatMessage, error) {
	return s.chat.ListByMode(ctx, userID, mode)
}

func (s *historyService) UnlockedModes(ctx context.Context, userID string) (map[domain.Mode]bool, error) {
	targets, err := s.targets.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[domain.Mode]bool, len(domain.AllModes))
	for _, mode := range domain.AllModes {
		unlocked[mode] = domain.ModeUnlocked(mode, targets)
	}
	return unlocked, nil
}
