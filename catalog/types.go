package catalog

// CustomizationKind membedakan pilihan tunggal (radio) dan ganda (checkbox).
type CustomizationKind string

const (
	KindSingle   CustomizationKind = "single"
	KindMultiple CustomizationKind = "multiple"
)

type CustomizationOption struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PriceAdjustment float64 `json:"price_adjustment"`
}

type Customization struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Kind            CustomizationKind     `json:"kind"`
	Options         []CustomizationOption `json:"options"`
	DefaultOptionID string                `json:"default_option_id,omitempty"`
}

// FindOption mencari opsi berdasarkan id di dalam satu customization.
func (cz Customization) FindOption(optionID string) (CustomizationOption, bool) {
	for _, opt := range cz.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return CustomizationOption{}, false
}

type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	ImageURL       string          `json:"image_url"`
	Category       string          `json:"category"`
	Customizations []Customization `json:"customizations,omitempty"`
}

// FindCustomization mencari axis customization milik item.
func (mi MenuItem) FindCustomization(customizationID string) (Customization, bool) {
	for _, cz := range mi.Customizations {
		if cz.ID == customizationID {
			return cz, true
		}
	}
	return Customization{}, false
}

type Category struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
