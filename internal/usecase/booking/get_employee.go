package booking

import (
	"context"

	domain "github.com/jithiee/FyndPro-Backend/internal/domain/booking"
	"github.com/jithiee/FyndPro-Backend/internal/dto"
	"github.com/jithiee/FyndPro-Backend/internal/httperr"
)

type GetEmployee struct {
	repo domain.Repository
}

func NewGetEmployee(
	repo domain.Repository,
) *GetEmployee {
	return &GetEmployee{
		repo: repo,
	}
}

func (uc *GetEmployee) Execute(
	ctx context.Context,
	userID uint,
) (*dto.UserWithProfileDTO, error) {

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	out := dto.NewUserWithProfile(user)
	return &out, nil
}
