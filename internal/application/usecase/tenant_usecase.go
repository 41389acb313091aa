package usecase

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// TenantUseCase consultas y actualización parcial de arrendatarios.
type TenantUseCase struct {
	repo repository.TenantRepository
}

// NewTenantUseCase construye el caso de uso.
func NewTenantUseCase(repo repository.TenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo}
}

// List devuelve todos los arrendatarios.
func (uc *TenantUseCase) List() ([]dto.TenantResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TenantResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTenantResponse(t))
	}
	return items, nil
}

// GetByID obtiene un arrendatario por ID.
func (uc *TenantUseCase) GetByID(id string) (*dto.TenantResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(t), nil
}

// Create registra un arrendatario (intake). Reliability debe estar en [1,10]
// y AmountOwed no puede ser negativo.
func (uc *TenantUseCase) Create(in dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	if in.Name == "" || in.Unit == "" || in.Property == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Language == "" {
		in.Language = "English"
	}
	if in.Status == "" {
		in.Status = entity.TenantStatusPending
	}
	if err := validateTenantFields(in.AmountOwed, in.DaysLate, in.Reliability, in.Priority, in.Status); err != nil {
		return nil, err
	}
	t := &entity.Tenant{
		Name:        in.Name,
		Unit:        in.Unit,
		Property:    in.Property,
		Phone:       in.Phone,
		Language:    in.Language,
		AmountOwed:  in.AmountOwed,
		DaysLate:    in.DaysLate,
		Reliability: in.Reliability,
		Priority:    in.Priority,
		Status:      in.Status,
		LastContact: in.LastContact,
		Notes:       in.Notes,
	}
	created, err := uc.repo.Create(t)
	if err != nil {
		return nil, err
	}
	return toTenantResponse(created), nil
}

// Update aplica una actualización parcial validada (merge superficial).
func (uc *TenantUseCase) Update(id string, in dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	updated, err := uc.repo.Update(id, func(t *entity.Tenant) error {
		if in.Name != nil {
			t.Name = *in.Name
		}
		if in.Unit != nil {
			t.Unit = *in.Unit
		}
		if in.Property != nil {
			t.Property = *in.Property
		}
		if in.Phone != nil {
			t.Phone = *in.Phone
		}
		if in.Language != nil {
			t.Language = *in.Language
		}
		if in.AmountOwed != nil {
			t.AmountOwed = *in.AmountOwed
		}
		if in.DaysLate != nil {
			t.DaysLate = *in.DaysLate
		}
		if in.Reliability != nil {
			t.Reliability = *in.Reliability
		}
		if in.Priority != nil {
			t.Priority = *in.Priority
		}
		if in.Status != nil {
			t.Status = *in.Status
		}
		if in.LastContact != nil {
			t.LastContact = in.LastContact
		}
		if in.Notes != nil {
			t.Notes = *in.Notes
		}
		return validateTenantFields(t.AmountOwed, t.DaysLate, t.Reliability, t.Priority, t.Status)
	})
	if err != nil {
		return nil, err
	}
	return toTenantResponse(updated), nil
}

func validateTenantFields(amountOwed decimal.Decimal, daysLate, reliability int, priority, status string) error {
	if amountOwed.IsNegative() || daysLate < 0 {
		return domain.ErrInvalidInput
	}
	if reliability < 1 || reliability > 10 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidPriority(priority) || !entity.ValidTenantStatus(status) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toTenantResponse(t *entity.Tenant) *dto.TenantResponse {
	if t == nil {
		return nil
	}
	return &dto.TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		Unit:        t.Unit,
		Property:    t.Property,
		Phone:       t.Phone,
		Language:    t.Language,
		AmountOwed:  t.AmountOwed,
		DaysLate:    t.DaysLate,
		Reliability: t.Reliability,
		Priority:    t.Priority,
		Status:      t.Status,
		LastContact: t.LastContact,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
	}
}
