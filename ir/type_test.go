package ir

import "testing"

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if back != typ {
			t.Errorf("round trip %s -> %s", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Nope")); err == nil {
		t.Errorf("no error for unknown type text")
	}
}

func TestTypeIsLeaf(t *testing.T) {
	for _, typ := range Types() {
		leaf := typ != ArrayType && typ != ObjectType
		if typ.IsLeaf() != leaf {
			t.Errorf("%s.IsLeaf() = %v", typ, typ.IsLeaf())
		}
	}
}
