package domain

// CREATE TABLE public.stocks (
//     product_id        BIGINT NOT NULL REFERENCES products (product_id),
//     store_id          BIGINT NOT NULL REFERENCES stores (store_id),
//     quantity_in_stock INT NOT NULL DEFAULT 0,
//     PRIMARY KEY (product_id, store_id)
// );

type Stock struct {
	ProductID       uint64 `gorm:"primaryKey;column:product_id"`
	StoreID         uint64 `gorm:"primaryKey;column:store_id"`
	QuantityInStock int    `gorm:"column:quantity_in_stock;not null"`
}

func (Stock) TableName() string {
	return "stocks"
}
