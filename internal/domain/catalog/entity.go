// internal/domain/catalog/entity.go
package catalog

// CustomizationType classifies a modifier group on a product
type CustomizationType string

const (
	CustomizationTypeSize     CustomizationType = "size"
	CustomizationTypeExtra    CustomizationType = "extra"
	CustomizationTypeRemoval  CustomizationType = "removal"
	CustomizationTypeSideDish CustomizationType = "side-dish"
	CustomizationTypeProtein  CustomizationType = "protein"
)

// SingleSelect reports whether at most one option of the group may be
// selected. Size and protein groups have radio semantics; everything
// else is multi-select.
func (t CustomizationType) SingleSelect() bool {
	return t == CustomizationTypeSize || t == CustomizationTypeProtein
}

// Option represents a selectable modifier on a customization group.
// Price is in centavos. IsDefault is informational only and does not
// auto-apply the option.
type Option struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	IsDefault   bool   `json:"is_default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Customization represents a named modifier group on a product
type Customization struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        CustomizationType `json:"type"`
	Required    bool              `json:"required"`
	Description string            `json:"description,omitempty"`
	Options     []Option          `json:"options"`
}

// Option returns the option with the given id within the group
func (c Customization) Option(id string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Product represents a menu product. Price is in centavos.
type Product struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               int64           `json:"price"`
	Image               string          `json:"image,omitempty"`
	Category            string          `json:"category"`
	IsPopular           bool            `json:"is_popular,omitempty"`
	Customizations      []Customization `json:"customizations,omitempty"`
	DetailedDescription string          `json:"detailed_description,omitempty"`
	PreparationTime     string          `json:"preparation_time,omitempty"`
	Allergens           []string        `json:"allergens,omitempty"`
}

// Customization returns the customization group with the given id
func (p Product) Customization(id string) (Customization, bool) {
	for _, c := range p.Customizations {
		if c.ID == id {
			return c, true
		}
	}
	return Customization{}, false
}

// Category groups menu products for display
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Products    []Product `json:"products"`
}

// Restaurant holds the store's display metadata
type Restaurant struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BannerImage string  `json:"banner_image,omitempty"`
	Logo        string  `json:"logo,omitempty"`
	Rating      float64 `json:"rating"`
	WhatsApp    string  `json:"whatsapp"`
	Address     string  `json:"address"`
}
