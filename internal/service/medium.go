package service

import (
	"context"

	"bibliothek-backend/internal/domain"
	"bibliothek-backend/internal/loan"
	"bibliothek-backend/internal/repository"
)

type mediumService struct {
	mediumRepo    repository.MediumRepository
	borrowingRepo repository.BorrowingRepository
}

func NewMediumService(mediumRepo repository.MediumRepository, borrowingRepo repository.BorrowingRepository) MediumService {
	return &mediumService{mediumRepo: mediumRepo, borrowingRepo: borrowingRepo}
}

func (s *mediumService) AddMedium(ctx context.Context, m *domain.Medium) (*domain.Medium, error) {
	if err := domain.ValidateMedium(m); err != nil {
		return nil, err
	}
	if err := s.mediumRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	m.Status = domain.MediumStatusAvailable
	return m, nil
}

func (s *mediumService) GetMedium(ctx context.Context, id int32) (*domain.Medium, error) {
	m, err := s.mediumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	active, err := s.borrowingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	m.Status = loan.Availability(m.ID, active)
	return m, nil
}

// UpdateMedium applies a partial update: only the fields present in the
// patch change.
func (s *mediumService) UpdateMedium(ctx context.Context, id int32, patch *domain.MediumPatch) (*domain.Medium, error) {
	m, err := s.mediumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Author != nil {
		m.Author = *patch.Author
	}
	if patch.Genre != nil {
		m.Genre = *patch.Genre
	}
	if patch.Rating != nil {
		m.Rating = *patch.Rating
	}
	if patch.AgeRating != nil {
		m.AgeRating = *patch.AgeRating
	}
	if patch.Identifier != nil {
		m.Identifier = *patch.Identifier
	}
	if patch.ShelfCode != nil {
		m.ShelfCode = *patch.ShelfCode
	}
	if err := domain.ValidateMedium(m); err != nil {
		return nil, err
	}
	if err := s.mediumRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return s.GetMedium(ctx, id)
}

// DeleteMedium refuses to remove a borrowed medium.
func (s *mediumService) DeleteMedium(ctx context.Context, id int32) error {
	if _, err := s.borrowingRepo.GetByMedium(ctx, id); err == nil {
		return domain.ErrMediumUnavailable
	}
	return s.mediumRepo.Delete(ctx, id)
}

func (s *mediumService) ListMedia(ctx context.Context) ([]domain.Medium, error) {
	media, err := s.mediumRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, media)
}

func (s *mediumService) SearchMedia(ctx context.Context, title string, availableOnly bool) ([]domain.Medium, error) {
	var (
		media []domain.Medium
		err   error
	)
	if title != "" {
		media, err = s.mediumRepo.SearchByTitle(ctx, title)
	} else {
		media, err = s.mediumRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	media, err = s.annotate(ctx, media)
	if err != nil {
		return nil, err
	}
	if !availableOnly {
		return media, nil
	}
	available := media[:0]
	for _, m := range media {
		if m.Status == domain.MediumStatusAvailable {
			available = append(available, m)
		}
	}
	return available, nil
}

// annotate recomputes availability from the current borrowing set. The
// status is never read from storage, so it cannot go stale across queries.
func (s *mediumService) annotate(ctx context.Context, media []domain.Medium) ([]domain.Medium, error) {
	active, err := s.borrowingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range media {
		media[i].Status = loan.Availability(media[i].ID, active)
	}
	return media, nil
}
