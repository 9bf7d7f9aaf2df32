package cart

import "testing"

func TestResolveKeyDeterministic(t *testing.T) {
	t.Parallel()

	a := ResolveKey("p1", opts("red", "30ml"))
	b := ResolveKey("p1", opts("red", "30ml"))
	if a != b {
		t.Fatalf("equal inputs must produce equal keys: %s != %s", a, b)
	}
}

func TestResolveKeyVariesWithInputs(t *testing.T) {
	t.Parallel()

	base := ResolveKey("p1", opts("red", "30ml"))

	if ResolveKey("p2", opts("red", "30ml")) == base {
		t.Fatal("different products must produce different keys")
	}
	if ResolveKey("p1", opts("pink", "30ml")) == base {
		t.Fatal("different shades must produce different keys")
	}
	if ResolveKey("p1", opts("red", "50ml")) == base {
		t.Fatal("different sizes must produce different keys")
	}
	if ResolveKey("p1", nil) == base {
		t.Fatal("option-less key must differ from optioned key")
	}
}

func TestResolveKeyDistinguishesEmptyFromMissing(t *testing.T) {
	t.Parallel()

	empty := ""
	if ResolveKey("p1", &VariantOptions{Shade: &empty}) == ResolveKey("p1", nil) {
		t.Fatal("an empty shade and a missing shade are different variants")
	}
}
