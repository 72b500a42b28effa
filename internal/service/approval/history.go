package approval

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/approval"
)

type HistoryServiceImpl struct {
	approval.HistoryRepository
}

func NewHistoryService(historyRepo approval.HistoryRepository) approval.HistoryService {
	return &HistoryServiceImpl{HistoryRepository: historyRepo}
}

// List implements approval.HistoryService.
func (s *HistoryServiceImpl) List(ctx context.Context, session access.Session, filter approval.HistoryFilter) (approval.ListHistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return approval.ListHistoryResponse{}, err
	}

	entries, total, err := s.HistoryRepository.List(ctx, filter, session.CompanyID)
	if err != nil {
		return approval.ListHistoryResponse{}, fmt.Errorf("failed to list approval history: %w", err)
	}

	responses := make([]approval.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, e.ToResponse())
	}
	return approval.ListHistoryResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Entries:    responses,
	}, nil
}
