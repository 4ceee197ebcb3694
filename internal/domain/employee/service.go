package employee

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/storage"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type EmployeeService interface {
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string, contentType string) (string, error)
}

type employeeServiceImpl struct {
	repo        EmployeeRepository
	fileStorage storage.FileStorage
}

func NewEmployeeService(repo EmployeeRepository, fileStorage storage.FileStorage) EmployeeService {
	return &employeeServiceImpl{repo: repo, fileStorage: fileStorage}
}

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

func (s *employeeServiceImpl) List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if !validator.IsInSlice(filter.SortBy, []string{"code", "first_name", "last_name", "hire_date", "created_at"}) {
		filter.SortBy = "last_name"
	}
	if filter.SortOrder != "desc" {
		filter.SortOrder = "asc"
	}

	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return ListEmployeeResponse{}, err
	}

	data := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		data = append(data, toResponse(e))
	}

	return ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *employeeServiceImpl) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

func (s *employeeServiceImpl) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return EmployeeResponse{}, err
	}

	e := Employee{
		Code:          req.Code,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		DepartmentID:  req.DepartmentID,
		DesignationID: req.DesignationID,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Status:        StatusActive,
	}
	if req.HireDate != nil {
		hireDate, _ := validator.IsValidDate(*req.HireDate)
		e.HireDate = &hireDate
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, req UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, req)
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *employeeServiceImpl) UploadPhoto(ctx context.Context, id string, file io.Reader, filename string, contentType string) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	// Unique name per upload so cached URLs never serve a replaced photo.
	path := fmt.Sprintf("employees/%s/photo-%s%s", id, uuid.New().String(), filepath.Ext(filename))
	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 24*time.Hour)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePhotoURL(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}
