// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The cart snapshot lives in a child table so line items stay queryable; the
// status column is indexed for the staff board and bulk clearing.
type OrderDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	TableNumber string `gorm:"type:varchar(16);not null"`
	Status      string `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time
	Lines       []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one cart line of a persisted order.
// Name and price are frozen copies taken at submission, so later menu edits
// never change what a stored order says it cost.
type OrderLineDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	OrderID  int64           `gorm:"not null;index"`
	ItemID   int             `gorm:"not null"`
	Name     string          `gorm:"type:varchar(128);not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity int             `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderID:  aggregate.ID(),
			ItemID:   line.ItemID(),
			Name:     line.Name(),
			Price:    line.UnitPrice(),
			Quantity: line.Quantity(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		TableNumber: aggregate.Table().String(),
		Status:      string(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		Lines:       lineDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its cart snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	table, err := kernel.NewTableNumber(dto.TableNumber)
	if err != nil {
		return nil, err
	}

	lines := make([]order.CartLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewCartLine(lineDTO.ItemID, lineDTO.Name, lineDTO.Price, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, table, lines, order.Status(dto.Status), dto.CreatedAt)
}
