package settings

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// Типичный диапазон коэффициента пересчета при покупке
	TypicalFactorMin = 0.900
	TypicalFactorMax = 0.930
	// Жесткий потолок: коэффициент не может превышать чистоту 100%
	MaxFactor = 1.0

	DefaultConversionFactor = 0.916
)

var (
	ErrInvalidFactor = errors.New("invalid conversion factor")
	ErrNotFound      = errors.New("shop settings not found")
)

// ShopSettings - единственная запись с общими настройками магазина.
// Изменение коэффициента не затрагивает уже проведенные операции.
type ShopSettings struct {
	PurchaseConversionFactor float64   `json:"purchase_conversion_factor"`
	UpdatedAt                time.Time `json:"updated_at"`
	UpdatedBy                string    `json:"updated_by,omitempty"`
}

// UpdateRequest - тело PUT /api/settings/shop, заменяет настройки целиком
type UpdateRequest struct {
	PurchaseConversionFactor float64 `json:"purchase_conversion_factor" doc:"Обычно 0.900-0.930"`
}

// ValidateFactor отклоняет неположительные значения и значения выше MaxFactor
func ValidateFactor(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: value is not a number", ErrInvalidFactor)
	}
	if f <= 0 {
		return fmt.Errorf("%w: must be greater than 0", ErrInvalidFactor)
	}
	if f > MaxFactor {
		return fmt.Errorf("%w: must not exceed %.3f", ErrInvalidFactor, MaxFactor)
	}
	return nil
}

// InTypicalRange сообщает, попадает ли коэффициент в диапазон 0.900-0.930 включительно
func InTypicalRange(f float64) bool {
	return f >= TypicalFactorMin && f <= TypicalFactorMax
}
