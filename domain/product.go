package domain

import (
	"github.com/shopspring/decimal"
)

// CREATE TABLE public.products (
//     product_id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name TEXT NOT NULL,
//     description  TEXT,
//     price        NUMERIC(10,2) NOT NULL
// );

type Product struct {
	ProductID   uint64          `gorm:"primaryKey;column:product_id;autoIncrement"`
	ProductName string          `gorm:"column:product_name;type:text;not null"`
	Description string          `gorm:"column:description;type:text"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
}

func (Product) TableName() string {
	return "products"
}
