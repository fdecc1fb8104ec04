package store

import (
	"context"
	"errors"
	"time"

	"github.com/ahpgap/workforce-planner/internal/store/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Run interface {
	List(ctx context.Context, filter *RunQueryFilter, opts *RunQueryOptions) (model.ScenarioRunList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ScenarioRun, error)
	Create(ctx context.Context, run model.ScenarioRun) (*model.ScenarioRun, error)
	UpdateNarrative(ctx context.Context, id uuid.UUID, narrative string) (*model.ScenarioRun, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RunStore struct {
	db *gorm.DB
}

// Make sure we conform to Run interface
var _ Run = (*RunStore)(nil)

func NewRunStore(db *gorm.DB) Run {
	return &RunStore{db: db}
}

func (r *RunStore) List(ctx context.Context, filter *RunQueryFilter, opts *RunQueryOptions) (model.ScenarioRunList, error) {
	var runs model.ScenarioRunList
	tx := r.getDB(ctx).Model(&runs)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if opts == nil {
		opts = NewRunQueryOptions().WithSortOrder(SortByCreatedTimeDesc)
	}
	for _, fn := range opts.QueryFn {
		tx = fn(tx)
	}

	if err := tx.Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *RunStore) Get(ctx context.Context, id uuid.UUID) (*model.ScenarioRun, error) {
	var run model.ScenarioRun
	if err := r.getDB(ctx).First(&run, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &run, nil
}

func (r *RunStore) Create(ctx context.Context, run model.ScenarioRun) (*model.ScenarioRun, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if err := r.getDB(ctx).Clauses(clause.Returning{}).Create(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &run, nil
}

func (r *RunStore) UpdateNarrative(ctx context.Context, id uuid.UUID, narrative string) (*model.ScenarioRun, error) {
	run, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	run.Narrative = &narrative
	run.UpdatedAt = &now
	if err := r.getDB(ctx).Model(run).Select("narrative", "updated_at").Updates(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *RunStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.getDB(ctx).Delete(&model.ScenarioRun{}, "id = ?", id.String())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (r *RunStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}
