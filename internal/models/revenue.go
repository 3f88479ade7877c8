package models

type Revenue struct {
	Month   string `gorm:"primaryKey;size:4" json:"month"`
	Revenue int64  `json:"revenue"`
}
