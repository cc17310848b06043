package domain

// CREATE TABLE public.addresses (
//     address_id   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     street       TEXT NOT NULL,
//     city         TEXT NOT NULL,
//     postal_code  TEXT NOT NULL,
//     country      TEXT NOT NULL
// );

type Address struct {
	AddressID  uint64 `gorm:"primaryKey;column:address_id;autoIncrement"`
	Street     string `gorm:"column:street;type:text;not null"`
	City       string `gorm:"column:city;type:text;not null"`
	PostalCode string `gorm:"column:postal_code;type:text;not null"`
	Country    string `gorm:"column:country;type:text;not null"`
}

func (Address) TableName() string {
	return "addresses"
}
