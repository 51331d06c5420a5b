package cart

import (
	"errors"
	"fmt"

	"github.com/antarcticanco/storefront-app/catalog"
)

// Choice adalah tagged variant untuk satu axis customization:
// single -> tepat satu opsi, multiple -> nol atau lebih opsi.
type Choice struct {
	Kind    catalog.CustomizationKind `json:"kind"`
	Option  catalog.CustomizationOption   `json:"option,omitempty"`
	Options []catalog.CustomizationOption `json:"options,omitempty"`
}

func SingleChoice(opt catalog.CustomizationOption) Choice {
	return Choice{Kind: catalog.KindSingle, Option: opt}
}

func MultiChoice(opts ...catalog.CustomizationOption) Choice {
	return Choice{Kind: catalog.KindMultiple, Options: opts}
}

// selectedOptions meratakan pilihan jadi satu slice, apapun kind-nya.
func (ch Choice) selectedOptions() []catalog.CustomizationOption {
	if ch.Kind == catalog.KindSingle {
		return []catalog.CustomizationOption{ch.Option}
	}
	return ch.Options
}

// Selection memetakan customization id -> pilihan untuk satu item.
type Selection map[string]Choice

// DefaultSelection membangun selection dari default option tiap
// customization single milik item (perilaku dialog customization asli).
func DefaultSelection(item catalog.MenuItem) Selection {
	sel := Selection{}
	for _, cz := range item.Customizations {
		if cz.Kind != catalog.KindSingle || cz.DefaultOptionID == "" {
			continue
		}
		if opt, ok := cz.FindOption(cz.DefaultOptionID); ok {
			sel[cz.ID] = SingleChoice(opt)
		}
	}
	return sel
}

// Validate memastikan selection konsisten dengan definisi customization item:
// id dikenal, kind cocok, opsi memang milik customization tsb, dan tidak ada
// opsi duplikat pada pilihan multiple.
func (sel Selection) Validate(item catalog.MenuItem) error {
	for czID, choice := range sel {
		cz, ok := item.FindCustomization(czID)
		if !ok {
			return fmt.Errorf("unknown customization %q for item %s", czID, item.ID)
		}
		if choice.Kind != cz.Kind {
			return fmt.Errorf("customization %q expects kind %s", czID, cz.Kind)
		}

		switch cz.Kind {
		case catalog.KindSingle:
			if choice.Option.ID == "" {
				return fmt.Errorf("customization %q requires exactly one option", czID)
			}
			if _, ok := cz.FindOption(choice.Option.ID); !ok {
				return fmt.Errorf("option %q does not belong to customization %q", choice.Option.ID, czID)
			}
		case catalog.KindMultiple:
			seen := make(map[string]bool, len(choice.Options))
			for _, opt := range choice.Options {
				if _, ok := cz.FindOption(opt.ID); !ok {
					return fmt.Errorf("option %q does not belong to customization %q", opt.ID, czID)
				}
				if seen[opt.ID] {
					return fmt.Errorf("duplicate option %q in customization %q", opt.ID, czID)
				}
				seen[opt.ID] = true
			}
		default:
			return errors.New("unknown customization kind")
		}
	}
	return nil
}
