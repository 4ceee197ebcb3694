package company

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/storage"
)

type CompanyService interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, req UpdateCompanyRequest) error
	Delete(ctx context.Context, id string) error
	UploadLogo(ctx context.Context, id string, file io.Reader, filename string, contentType string) (string, error)
}

type companyServiceImpl struct {
	repo        CompanyRepository
	fileStorage storage.FileStorage
}

func NewCompanyService(repo CompanyRepository, fileStorage storage.FileStorage) CompanyService {
	return &companyServiceImpl{repo: repo, fileStorage: fileStorage}
}

func (s *companyServiceImpl) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, toResponse(c))
	}
	return result, nil
}

func (s *companyServiceImpl) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return CompanyResponse{}, err
	}
	return toResponse(c), nil
}

func (s *companyServiceImpl) Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return CompanyResponse{}, err
	}

	created, err := s.repo.Create(ctx, Company{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		return CompanyResponse{}, err
	}
	return toResponse(created), nil
}

func (s *companyServiceImpl) Update(ctx context.Context, req UpdateCompanyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, req)
}

func (s *companyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *companyServiceImpl) UploadLogo(ctx context.Context, id string, file io.Reader, filename string, contentType string) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	path := fmt.Sprintf("companies/%s/logo-%s%s", id, uuid.New().String(), filepath.Ext(filename))
	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store logo: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 24*time.Hour)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateLogoURL(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}
