package shift

import (
	"context"
	"errors"
	"time"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type ShiftService interface {
	List(ctx context.Context) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error

	ListAssignments(ctx context.Context, employeeID string) ([]ShiftAssignmentResponse, error)
	Assign(ctx context.Context, req AssignShiftRequest) (ShiftAssignmentResponse, error)
	EndAssignment(ctx context.Context, id string, endDate time.Time) error
}

type shiftServiceImpl struct {
	shiftRepo      ShiftRepository
	assignmentRepo ShiftAssignmentRepository
}

func NewShiftService(shiftRepo ShiftRepository, assignmentRepo ShiftAssignmentRepository) ShiftService {
	return &shiftServiceImpl{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *shiftServiceImpl) List(ctx context.Context) ([]ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		result = append(result, toShiftResponse(sh))
	}
	return result, nil
}

func (s *shiftServiceImpl) GetByID(ctx context.Context, id string) (ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return ShiftResponse{}, err
	}
	return toShiftResponse(sh), nil
}

func (s *shiftServiceImpl) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return ShiftResponse{}, err
	}

	_, err := s.shiftRepo.GetByName(ctx, req.Name)
	if err == nil {
		return ShiftResponse{}, ErrShiftNameExists
	}
	if !errors.Is(err, ErrShiftNotFound) {
		return ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Workdays:  req.Workdays,
	})
	if err != nil {
		return ShiftResponse{}, err
	}
	return toShiftResponse(created), nil
}

func (s *shiftServiceImpl) Update(ctx context.Context, req UpdateShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.shiftRepo.Update(ctx, req)
}

func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	count, err := s.shiftRepo.CountAssignments(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrShiftInUse
	}
	return s.shiftRepo.Delete(ctx, id)
}

func (s *shiftServiceImpl) ListAssignments(ctx context.Context, employeeID string) ([]ShiftAssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]ShiftAssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, toAssignmentResponse(a))
	}
	return result, nil
}

func (s *shiftServiceImpl) Assign(ctx context.Context, req AssignShiftRequest) (ShiftAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return ShiftAssignmentResponse{}, err
	}

	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		return ShiftAssignmentResponse{}, err
	}

	effective, _ := validator.IsValidDate(req.EffectiveDate)

	// Close out any assignment still active on the new effective date.
	active, err := s.assignmentRepo.GetActiveByEmployee(ctx, req.EmployeeID, effective)
	if err == nil {
		if err := s.assignmentRepo.EndAssignment(ctx, active.ID, effective.AddDate(0, 0, -1)); err != nil {
			return ShiftAssignmentResponse{}, err
		}
	} else if !errors.Is(err, ErrAssignmentNotFound) {
		return ShiftAssignmentResponse{}, err
	}

	assignment := ShiftAssignment{
		EmployeeID:    req.EmployeeID,
		ShiftID:       req.ShiftID,
		EffectiveDate: effective,
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		assignment.EndDate = &end
	}

	created, err := s.assignmentRepo.Create(ctx, assignment)
	if err != nil {
		return ShiftAssignmentResponse{}, err
	}
	return toAssignmentResponse(created), nil
}

func (s *shiftServiceImpl) EndAssignment(ctx context.Context, id string, endDate time.Time) error {
	return s.assignmentRepo.EndAssignment(ctx, id, endDate)
}
