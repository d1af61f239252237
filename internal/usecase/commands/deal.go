package commands

import (
	"context"

	"dealhub/internal/domain/deal"
	"dealhub/internal/infra"
	"dealhub/internal/pkg/clock"
	"dealhub/internal/pkg/errs"
	"dealhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxBulkLocations bounds a single bulk create.
const MaxBulkLocations = 500

var (
	ErrDealNotFound     = errs.Mark(errs.New("deal not found"), errs.ErrNotFound)
	ErrNoLocations      = errs.Mark(errs.New("at least one location is required"), errs.ErrDomainValidation)
	ErrTooManyLocations = errs.Mark(errs.New("too many locations in one request"), errs.ErrDomainValidation)
)

type DealCommands interface {
	Create(ctx context.Context, p deal.Params) (uuid.UUID, error)
	// BulkCreate stores one copy of p per location, all or nothing.
	BulkCreate(ctx context.Context, p deal.Params, locations []deal.LocationParams) ([]uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, ch deal.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
	RecordView(ctx context.Context, id uuid.UUID) (int, error)
	RecordClick(ctx context.Context, id uuid.UUID) (int, error)
}

type dealUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDealUseCase(uow shared.UnitOfWork, clk clock.Clock) DealCommands {
	return &dealUseCaseImpl{uow: uow, clock: clk}
}

func (uc *dealUseCaseImpl) Create(ctx context.Context, p deal.Params) (uuid.UUID, error) {
	d, err := deal.NewDeal(uuid.Nil, p, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Deals().Create(ctx, tx.DB(), d)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *dealUseCaseImpl) BulkCreate(ctx context.Context, p deal.Params, locations []deal.LocationParams) ([]uuid.UUID, error) {
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}
	if len(locations) > MaxBulkLocations {
		return nil, ErrTooManyLocations
	}

	now := uc.clock.Now()
	deals := make([]*deal.Deal, len(locations))
	for i, loc := range locations {
		d, err := deal.NewDeal(uuid.Nil, p.WithLocation(loc), now)
		if err != nil {
			return nil, errs.Wrapf(err, "location %d", i)
		}
		deals[i] = d
	}

	var ids []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// reset on retry
		ids = make([]uuid.UUID, 0, len(deals))
		for _, d := range deals {
			id, derr := tx.Deals().Create(ctx, tx.DB(), d)
			if derr != nil {
				return derr
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (uc *dealUseCaseImpl) Update(ctx context.Context, id uuid.UUID, ch deal.Patch) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Deals().FindByIDForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		updated, derr := current.Apply(ch, uc.clock.Now())
		if derr != nil {
			return derr
		}
		return tx.Deals().Update(ctx, tx.DB(), updated)
	})
	return mapNotFound(err)
}

func (uc *dealUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Deals().Delete(ctx, tx.DB(), id)
	})
	return mapNotFound(err)
}

func (uc *dealUseCaseImpl) RecordView(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Deals().IncrementViews(ctx, tx.DB(), id)
		views = n
		return derr
	})
	return views, mapNotFound(err)
}

func (uc *dealUseCaseImpl) RecordClick(ctx context.Context, id uuid.UUID) (int, error) {
	var clicks int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Deals().IncrementClicks(ctx, tx.DB(), id)
		clicks = n
		return derr
	})
	return clicks, mapNotFound(err)
}

func mapNotFound(err error) error {
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return ErrDealNotFound
	}
	return err
}
