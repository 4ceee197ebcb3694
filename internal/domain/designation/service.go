package designation

import "context"

type DesignationService interface {
	List(ctx context.Context) ([]DesignationResponse, error)
	GetByID(ctx context.Context, id string) (DesignationResponse, error)
	Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	Update(ctx context.Context, req UpdateDesignationRequest) error
	Delete(ctx context.Context, id string) error
}

type designationServiceImpl struct {
	repo DesignationRepository
}

func NewDesignationService(repo DesignationRepository) DesignationService {
	return &designationServiceImpl{repo: repo}
}

func (s *designationServiceImpl) List(ctx context.Context) ([]DesignationResponse, error) {
	designations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]DesignationResponse, 0, len(designations))
	for _, d := range designations {
		result = append(result, toResponse(d))
	}
	return result, nil
}

func (s *designationServiceImpl) GetByID(ctx context.Context, id string) (DesignationResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DesignationResponse{}, err
	}
	return toResponse(d), nil
}

func (s *designationServiceImpl) Create(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return DesignationResponse{}, err
	}

	created, err := s.repo.Create(ctx, Designation{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Description:  req.Description,
	})
	if err != nil {
		return DesignationResponse{}, err
	}
	return toResponse(created), nil
}

func (s *designationServiceImpl) Update(ctx context.Context, req UpdateDesignationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, req)
}

func (s *designationServiceImpl) Delete(ctx context.Context, id string) error {
	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDesignationInUse
	}
	return s.repo.Delete(ctx, id)
}
