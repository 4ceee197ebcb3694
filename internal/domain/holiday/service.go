package holiday

import (
	"context"
	"time"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type HolidayService interface {
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	GetByID(ctx context.Context, id string) (HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) error
	Delete(ctx context.Context, id string) error
}

type holidayServiceImpl struct {
	repo HolidayRepository
}

func NewHolidayService(repo HolidayRepository) HolidayService {
	return &holidayServiceImpl{repo: repo}
}

func (s *holidayServiceImpl) ListByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	holidays, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	result := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, toResponse(h))
	}
	return result, nil
}

func (s *holidayServiceImpl) GetByID(ctx context.Context, id string) (HolidayResponse, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return HolidayResponse{}, err
	}
	return toResponse(h), nil
}

func (s *holidayServiceImpl) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.repo.Create(ctx, Holiday{
		Name: req.Name,
		Date: date,
		Type: Type(req.Type),
	})
	if err != nil {
		return HolidayResponse{}, err
	}
	return toResponse(created), nil
}

func (s *holidayServiceImpl) Update(ctx context.Context, req UpdateHolidayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, req)
}

func (s *holidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
