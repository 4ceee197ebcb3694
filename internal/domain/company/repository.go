package company

import "context"

type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Create(ctx context.Context, c Company) (Company, error)
	Update(ctx context.Context, req UpdateCompanyRequest) error
	UpdateLogoURL(ctx context.Context, id string, logoURL string) error
	Delete(ctx context.Context, id string) error
}
