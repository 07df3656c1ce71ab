// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service renders order receipts as PDF documents
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt renders the order summary into a PDF comprovante.
// The checkout engine treats the result as an opaque artifact.
func (s *Service) GenerateReceipt(ctx context.Context, summary *order.Summary) ([]byte, error) {
	htmlContent, err := s.generateHTML(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.Zoom.Set(0.95)
	pdfg.AddPage(page)

	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return pdfg.Bytes(), nil
}

// generateHTML generates HTML content from the receipt template
func (s *Service) generateHTML(summary *order.Summary) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newReceiptData(s.config, summary)); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// receiptData is the view model passed to the receipt template, with
// all amounts pre-formatted
type receiptData struct {
	StoreName     string
	StoreAddress  string
	StorePhone    string
	OrderNumber   string
	PaymentMethod string
	PlacedAt      string
	Items         []receiptItem
	Subtotal      string
	DeliveryFee   string
	Total         string
	CashAmount    string
	Change        string
	Street        string
	Number        string
	Neighborhood  string
	Complement    string
	WhatsApp      string
}

type receiptItem struct {
	Quantity       int
	Name           string
	Customizations string
	UnitPrice      string
	LineTotal      string
}

func newReceiptData(cfg *config.Config, summary *order.Summary) receiptData {
	data := receiptData{
		StoreName:     cfg.Store.Name,
		StoreAddress:  cfg.Store.Address,
		StorePhone:    cfg.Store.Phone,
		OrderNumber:   summary.OrderNumber,
		PaymentMethod: summary.PaymentMethod,
		PlacedAt:      summary.Timestamp.Format("02/01/2006 15:04"),
		Subtotal:      order.FormatAmount(summary.Subtotal),
		DeliveryFee:   order.FormatAmount(summary.DeliveryFee),
		Total:         order.FormatAmount(summary.Total),
		Street:        summary.DeliveryInfo.Street,
		Number:        summary.DeliveryInfo.Number,
		Neighborhood:  summary.DeliveryInfo.Neighborhood,
		Complement:    summary.DeliveryInfo.Complement,
		WhatsApp:      summary.DeliveryInfo.WhatsApp,
	}

	if summary.CashAmount != nil {
		data.CashAmount = order.FormatAmount(*summary.CashAmount)
	}
	if summary.Change != nil {
		data.Change = order.FormatAmount(*summary.Change)
	}

	for _, item := range summary.Items {
		data.Items = append(data.Items, receiptItem{
			Quantity:       item.Quantity,
			Name:           item.Name,
			Customizations: flattenCustomizations(item),
			UnitPrice:      order.FormatAmount(item.UnitPrice),
			LineTotal:      order.FormatAmount(item.LineTotal),
		})
	}
	return data
}

func flattenCustomizations(item order.LineItem) string {
	if len(item.Customizations) == 0 {
		return ""
	}

	groupIDs := make([]string, 0, len(item.Customizations))
	for id := range item.Customizations {
		groupIDs = append(groupIDs, id)
	}
	sort.Strings(groupIDs)

	var out string
	for _, id := range groupIDs {
		for _, opt := range item.Customizations[id] {
			if out != "" {
				out += ", "
			}
			out += opt.Name
		}
	}
	return out
}
