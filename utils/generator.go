package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wambuidev/learning_center/models"
	"gorm.io/gorm"
)

const receiptSuffixLength = 6
const digitBytes = "0123456789"

// GenerateUniqueReceiptNumber produces a receipt number like "RCP-493817"
// that no existing payment uses.
func GenerateUniqueReceiptNumber(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, receiptSuffixLength)
		for i := range b {
			b[i] = digitBytes[seededRand.Intn(len(digitBytes))]
		}
		number := fmt.Sprintf("RCP-%s", string(b))

		var payment models.Payment
		err := tx.Where("receipt_number = ?", number).First(&payment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return number, nil
			}
			return "", err
		}
	}
}
