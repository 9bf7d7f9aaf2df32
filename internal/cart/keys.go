package cart

import (
	"strings"

	"github.com/google/uuid"
)

// keyNamespace scopes cart line keys; any fixed UUID works as long as it
// never changes between releases.
var keyNamespace = uuid.MustParse("8f1c7a52-30a4-4f3e-9b3f-6d1f0a9c2e41")

// ResolveKey derives the key for a cart line from product identity and the
// chosen variant options. It is deterministic: the same product and options
// always produce the same key. Merge correctness does not depend on that --
// the store matches lines by content -- but a stable key keeps snapshots and
// client references reproducible.
func ResolveKey(productID string, opts *VariantOptions) LineItemKey {
	parts := []string{
		productID,
		encodeOpt(optShade(opts)),
		encodeOpt(optSize(opts)),
		encodeOpt(optSKU(opts)),
	}
	return LineItemKey(uuid.NewSHA1(keyNamespace, []byte(strings.Join(parts, "|"))).String())
}

// encodeOpt keeps a missing option distinguishable from an empty string so
// two different variants can never collide on one key.
func encodeOpt(v *string) string {
	if v == nil {
		return "-"
	}
	return "v:" + *v
}

func optSKU(o *VariantOptions) *string {
	if o == nil {
		return nil
	}
	return o.SKU
}
