package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account on the dashboard. All entries and tickets belong to
// exactly one user.
type User struct {
	DefaultModel
	Name        string          `json:"name" example:"Rafael"`
	Email       string          `json:"email" gorm:"uniqueIndex" example:"rafael@example.com"`
	Password    string          `json:"-"`                                                         // bcrypt hash, never serialized
	CreditLimit decimal.Decimal `json:"creditoMaximo" gorm:"type:DECIMAL(20,8)" example:"1500.00"` // Configured credit card ceiling, 0 means unset
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if !strings.Contains(u.Email, "@") {
		return ErrUserEmailInvalid
	}

	if u.CreditLimit.IsNegative() {
		return ErrCreditLimitNegative
	}

	return nil
}

// SetPassword hashes the cleartext password and stores the hash.
func (u *User) SetPassword(cleartext string) error {
	if len(cleartext) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the stored hash.
func (u User) CheckPassword(cleartext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(cleartext)) == nil
}
