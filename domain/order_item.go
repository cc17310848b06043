package domain

import (
	"github.com/shopspring/decimal"
)

// CREATE TABLE public.order_items (
//     order_item_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     order_id      BIGINT NOT NULL REFERENCES orders (order_id),
//     product_id    BIGINT NOT NULL REFERENCES products (product_id),
//     unit_price    NUMERIC(10,2) NOT NULL,
//     quantity      INT NOT NULL,
//     discount      NUMERIC(10,2) NOT NULL DEFAULT 0
// );

type OrderItem struct {
	OrderItemID uint64          `gorm:"primaryKey;column:order_item_id;autoIncrement"`
	OrderID     uint64          `gorm:"column:order_id;not null"`
	ProductID   uint64          `gorm:"column:product_id;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	Discount    decimal.Decimal `gorm:"column:discount;type:numeric(10,2);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is unit_price * quantity - discount.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.Discount)
}
