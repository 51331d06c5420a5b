package cart

import (
	"sort"
	"strings"

	"github.com/antarcticanco/storefront-app/catalog"
)

// DefaultSignature adalah signature untuk selection kosong.
const DefaultSignature = "default"

// Signature menghasilkan encoding kanonik dari sebuah selection. Dua
// selection dengan pilihan yang sama selalu mendapat string yang sama,
// berapapun urutan insert/toggle-nya; string ini dipakai sebagai identity
// key kedua dari sebuah cart line.
//
// Format: entri "<customizationId>:<payload>" diurutkan berdasarkan
// customization id dan digabung dengan "|". Payload = id opsi (single) atau
// daftar id opsi terurut dipisah koma (multiple).
func Signature(sel Selection) string {
	if len(sel) == 0 {
		return DefaultSignature
	}

	keys := make([]string, 0, len(sel))
	for k := range sel {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		choice := sel[key]
		var payload string
		if choice.Kind == catalog.KindMultiple {
			ids := make([]string, 0, len(choice.Options))
			for _, opt := range choice.Options {
				ids = append(ids, opt.ID)
			}
			sort.Strings(ids)
			payload = strings.Join(ids, ",")
		} else {
			payload = choice.Option.ID
		}
		parts = append(parts, key+":"+payload)
	}
	return strings.Join(parts, "|")
}
