package domain

// CREATE TABLE public.categories (
//     category_id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     category_name TEXT NOT NULL
// );
//
// CREATE TABLE public.products_categories (
//     product_id  BIGINT NOT NULL REFERENCES products (product_id),
//     category_id BIGINT NOT NULL REFERENCES categories (category_id),
//     PRIMARY KEY (product_id, category_id)
// );

type Category struct {
	CategoryID   uint64 `gorm:"primaryKey;column:category_id;autoIncrement"`
	CategoryName string `gorm:"column:category_name;type:text;not null"`
}

func (Category) TableName() string {
	return "categories"
}

// ProductCategory is the many-to-many join row between products and categories.
type ProductCategory struct {
	ProductID  uint64 `gorm:"primaryKey;column:product_id"`
	CategoryID uint64 `gorm:"primaryKey;column:category_id"`
}

func (ProductCategory) TableName() string {
	return "products_categories"
}
