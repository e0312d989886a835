package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// firstOrderID seeds the identifier sequence; the first order ever placed
// gets firstOrderID+1.
const firstOrderID = 1000

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID computes the next free order identifier from the persisted maximum.
// Two transactions may compute the same value; the primary key constraint
// catches the loser on Add, which surfaces as ports.ErrDuplicateID.
func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(id), ?) + 1 FROM orders
	`, firstOrderID).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

// Add saves a new order and its cart lines to the database.
// An identifier collision is reported as ports.ErrDuplicateID so the caller
// can recompute and retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: order id %d", ports.ErrDuplicateID, aggregate.ID())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order's status to the database.
// The cart snapshot is immutable after submission, so only the status column
// is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Update("status", string(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order id", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its cart lines.
// Within a transaction the order's row is locked until commit, so concurrent
// status updates to the same order serialize.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Table: clause.Table{Name: "orders"}}).
		Preload("Lines").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored order sorted by identifier.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").Order("id").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInStatus retrieves all orders currently in the given status,
// sorted by identifier.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").Order("id").
		Find(&dtos, "status = ?", string(status)).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// RemoveAllInStatus deletes every order in the given status along with its
// cart lines, and reports how many orders were removed.
func (r *GormOrderRepository) RemoveAllInStatus(ctx context.Context, status order.Status) (int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("status = ?", string(status)).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	if err = r.db.WithContext(ctx).Delete(&OrderLineDTO{}, "order_id IN ?", ids).Error; err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id IN ?", ids)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// CountAll reports how many orders the store holds.
func (r *GormOrderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByStatus reports how many orders sit in each status.
// Statuses with no orders are absent from the result.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	rows, err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int64)
	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		counts[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
