package domain

// CREATE TABLE public.carriers (
//     carrier_id    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     carrier_name  TEXT NOT NULL,
//     contact_url   TEXT,
//     contact_phone TEXT
// );

type Carrier struct {
	CarrierID    uint64 `gorm:"primaryKey;column:carrier_id;autoIncrement"`
	CarrierName  string `gorm:"column:carrier_name;type:text;not null"`
	ContactURL   string `gorm:"column:contact_url;type:text"`
	ContactPhone string `gorm:"column:contact_phone;type:text"`
}

func (Carrier) TableName() string {
	return "carriers"
}
