package domain

// CREATE TABLE public.stores (
//     store_id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     store_name TEXT NOT NULL
// );

type Store struct {
	StoreID   uint64 `gorm:"primaryKey;column:store_id;autoIncrement"`
	StoreName string `gorm:"column:store_name;type:text;not null"`
}

func (Store) TableName() string {
	return "stores"
}
