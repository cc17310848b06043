package domain

// CREATE TABLE public.customers (
//     customer_id  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     first_name   TEXT NOT NULL,
//     last_name    TEXT NOT NULL,
//     email        TEXT NOT NULL UNIQUE,
//     phone        TEXT
// );

type Customer struct {
	CustomerID uint64 `gorm:"primaryKey;column:customer_id;autoIncrement"`
	FirstName  string `gorm:"column:first_name;type:text;not null"`
	LastName   string `gorm:"column:last_name;type:text;not null"`
	Email      string `gorm:"column:email;type:text;not null"`
	Phone      string `gorm:"column:phone;type:text"`
}

func (Customer) TableName() string {
	return "customers"
}

// FullName is the display name used by every report (first + " " + last).
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
