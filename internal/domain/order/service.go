// internal/domain/order/service.go
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Record is the persisted form of a completed order summary. Line items
// are stored as a JSON document; the archive is write-once.
type Record struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderNumber   string    `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	ItemsJSON     string    `gorm:"type:text;not null" json:"-"`
	Subtotal      int64     `gorm:"not null" json:"subtotal"`
	DeliveryFee   int64     `gorm:"not null" json:"delivery_fee"`
	Total         int64     `gorm:"not null" json:"total"`
	PaymentMethod string    `gorm:"not null;size:50" json:"payment_method"`
	Street        string    `gorm:"size:255" json:"street"`
	Number        string    `gorm:"size:20" json:"number"`
	Neighborhood  string    `gorm:"size:100" json:"neighborhood"`
	Complement    string    `gorm:"size:255" json:"complement"`
	WhatsApp      string    `gorm:"size:20" json:"whatsapp"`
	CashAmount    *int64    `json:"cash_amount,omitempty"`
	Change        *int64    `json:"change,omitempty"`
	PixOrderID    string    `gorm:"size:50" json:"pix_order_id,omitempty"`
	PlacedAt      time.Time `gorm:"not null;index" json:"placed_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Record) TableName() string {
	return "order_records"
}

// Service archives completed orders and looks them up by number
type Service struct {
	db *gorm.DB
}

// NewService creates a new order archive service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Archive persists a summary as an order record
func (s *Service) Archive(ctx context.Context, summary *Summary) error {
	itemsJSON, err := json.Marshal(summary.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	record := Record{
		OrderNumber:   summary.OrderNumber,
		ItemsJSON:     string(itemsJSON),
		Subtotal:      summary.Subtotal,
		DeliveryFee:   summary.DeliveryFee,
		Total:         summary.Total,
		PaymentMethod: summary.PaymentMethod,
		Street:        summary.DeliveryInfo.Street,
		Number:        summary.DeliveryInfo.Number,
		Neighborhood:  summary.DeliveryInfo.Neighborhood,
		Complement:    summary.DeliveryInfo.Complement,
		WhatsApp:      summary.DeliveryInfo.WhatsApp,
		CashAmount:    summary.CashAmount,
		Change:        summary.Change,
		PixOrderID:    summary.PixOrderID,
		PlacedAt:      summary.Timestamp,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to archive order %s: %w", summary.OrderNumber, err)
	}
	return nil
}

// FindByNumber returns the archived record for an order number
func (s *Service) FindByNumber(ctx context.Context, orderNumber string) (*Record, error) {
	var record Record
	err := s.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&record).Error
	if err != nil {
		return nil, fmt.Errorf("order %s not found: %w", orderNumber, err)
	}
	return &record, nil
}

// Items decodes the record's line items
func (r *Record) Items() ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(r.ItemsJSON), &items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return items, nil
}
