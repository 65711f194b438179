package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ykarpenko/sessionkeeper/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new profile. When the caller did not supply an id the
// store assigns one.
func (s *Service) Create(ctx context.Context, profile *Profile) (*Profile, error) {

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	profile, err := s.repo.Create(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %v", err)
	}

	return profile, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Profile, error) {

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return profile, nil
}

// ListByEmail returns every profile with the given email, oldest first.
// An email with no profiles yields an empty slice, not an error.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]*Profile, error) {

	result, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if result == nil {
		result = []*Profile{}
	}

	return result, nil
}
