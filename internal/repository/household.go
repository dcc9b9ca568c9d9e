package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/splithouse/receipts-engine/gen/ent"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/internal/entity"
)

type HouseholdRepository interface {
	Create(ctx context.Context, name, currency string) (*entity.Household, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Household, error)
	List(ctx context.Context) ([]*entity.Household, error)
}

type householdRepository struct {
	entc   *ent.Client
	logger *slog.Logger
}

func NewHouseholdRepository(entc *ent.Client, logger *slog.Logger) HouseholdRepository {
	return &householdRepository{entc: entc, logger: logger}
}

func (r *householdRepository) Create(ctx context.Context, name, currency string) (*entity.Household, error) {
	if currency == "" {
		currency = "USD"
	}
	row, err := r.entc.Household.Create().
		SetName(name).
		SetCurrency(currency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create household", "name", name, "error", err)
		return nil, err
	}
	return householdToEntity(row), nil
}

func (r *householdRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Household, error) {
	row, err := r.entc.Household.Query().
		Where(household.IDEQ(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return householdToEntity(row), nil
}

func (r *householdRepository) List(ctx context.Context) ([]*entity.Household, error) {
	rows, err := r.entc.Household.Query().
		Order(ent.Asc(household.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Household, 0, len(rows))
	for _, row := range rows {
		out = append(out, householdToEntity(row))
	}
	return out, nil
}

func householdToEntity(row *ent.Household) *entity.Household {
	return &entity.Household{
		ID:        row.ID,
		Name:      row.Name,
		Currency:  row.Currency,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
