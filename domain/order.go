package domain

import (
	"time"
)

// CREATE TABLE public.orders (
//     order_id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     customer_id         BIGINT NOT NULL REFERENCES customers (customer_id),
//     order_date          TIMESTAMPTZ NOT NULL,
//     order_status        TEXT NOT NULL,
//     shipping_address_id BIGINT NOT NULL REFERENCES addresses (address_id),
//     billing_address_id  BIGINT NOT NULL REFERENCES addresses (address_id),
//     carrier_id          BIGINT REFERENCES carriers (carrier_id),
//     tracking_number     TEXT,
//     shipped_date        TIMESTAMPTZ,
//     delivered_date      TIMESTAMPTZ
// );

type Order struct {
	OrderID           uint64     `gorm:"primaryKey;column:order_id;autoIncrement"`
	CustomerID        uint64     `gorm:"column:customer_id;not null"`
	OrderDate         time.Time  `gorm:"column:order_date;not null"`
	OrderStatus       string     `gorm:"column:order_status;type:text;not null"`
	ShippingAddressID uint64     `gorm:"column:shipping_address_id;not null"`
	BillingAddressID  uint64     `gorm:"column:billing_address_id;not null"`
	CarrierID         *uint64    `gorm:"column:carrier_id"`
	TrackingNumber    *string    `gorm:"column:tracking_number;type:text"`
	ShippedDate       *time.Time `gorm:"column:shipped_date"`
	DeliveredDate     *time.Time `gorm:"column:delivered_date"`
}

func (Order) TableName() string {
	return "orders"
}
