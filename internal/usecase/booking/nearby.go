package booking

import (
	"context"
	"math"
	"sort"

	domain "github.com/jithiee/FyndPro-Backend/internal/domain/booking"
	"github.com/jithiee/FyndPro-Backend/internal/dto"
	"github.com/jithiee/FyndPro-Backend/internal/geo"
	"github.com/jithiee/FyndPro-Backend/internal/httperr"
	"github.com/jithiee/FyndPro-Backend/internal/models"
)

const DefaultRadiusKm = 50

// CandidateCache holds the employee-with-coordinates list so the nearby
// search does not scan users on every request. A nil cache disables it.
type CandidateCache interface {
	GetCandidates(ctx context.Context) ([]models.User, error)
	SetCandidates(ctx context.Context, users []models.User) error
}

// ======================================================
// USE CASE
// ======================================================

type NearbyEmployees struct {
	repo  domain.Repository
	cache CandidateCache
}

func NewNearbyEmployees(
	repo domain.Repository,
	cache CandidateCache,
) *NearbyEmployees {
	return &NearbyEmployees{
		repo:  repo,
		cache: cache,
	}
}

// Execute ranks employees within radiusKm of the requester, nearest
// first. Employees without coordinates never reach the candidate list.
func (uc *NearbyEmployees) Execute(
	ctx context.Context,
	requester *models.User,
	radiusKm float64,
) ([]dto.NearbyEmployeeDTO, error) {

	if !requester.HasLocation() {
		return nil, httperr.ErrBusiness("location_unset")
	}

	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	candidates, err := uc.candidates(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]dto.NearbyEmployeeDTO, 0, len(candidates))
	for _, emp := range candidates {
		if !emp.HasLocation() {
			continue
		}

		d := geo.Distance(
			*requester.Latitude,
			*requester.Longitude,
			*emp.Latitude,
			*emp.Longitude,
		)
		if d > radiusKm {
			continue
		}

		results = append(results, dto.NearbyEmployeeDTO{
			ID:         emp.ID,
			FullName:   emp.FullName,
			Email:      emp.Email,
			Location:   emp.Location,
			Latitude:   emp.Latitude,
			Longitude:  emp.Longitude,
			DistanceKm: math.Round(d*100) / 100,
			Profile:    emp.EmployeeProfile,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	return results, nil
}

func (uc *NearbyEmployees) candidates(ctx context.Context) ([]models.User, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetCandidates(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	users, err := uc.repo.ListEmployeesWithLocation(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.SetCandidates(ctx, users)
	}

	return users, nil
}
