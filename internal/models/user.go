package models

// User is the identity every ledger is scoped to.
type User struct {
	Base
	DisplayName string          `gorm:"not null" json:"display_name"`
	LoginName   string          `gorm:"uniqueIndex;not null" json:"login_name"`
	Password    string          `gorm:"not null" json:"-"`
	Ledgers     []MonthlyLedger `gorm:"foreignKey:UserID" json:"ledgers,omitempty"`
}
