package orders

import "testing"

func TestNew_AssignsID(t *testing.T) {
	a := New("alice", 100)
	b := New("bob", 200)
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty ids")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct ids")
	}
}

func TestClone_Deep(t *testing.T) {
	src := New("alice", 100)
	src.Items = []Item{{SKU: "sku-1", Qty: 1, Price: 100}}
	src.Meta = map[string]string{"channel": "web"}

	dst := src.Clone()
	dst.Items[0].Qty = 9
	dst.Meta["channel"] = "store"

	if src.Items[0].Qty != 1 {
		t.Fatalf("deep clone aliased items: %d", src.Items[0].Qty)
	}
	if src.Meta["channel"] != "web" {
		t.Fatalf("deep clone aliased meta: %s", src.Meta["channel"])
	}
}

func TestShallowClone_Aliases(t *testing.T) {
	src := New("alice", 100)
	src.Items = []Item{{SKU: "sku-1", Qty: 1, Price: 100}}
	src.Meta = map[string]string{"channel": "web"}

	dst := src.ShallowClone()
	dst.Items[0].Qty = 9
	dst.Meta["channel"] = "store"

	if src.Items[0].Qty != 9 {
		t.Fatal("shallow clone must alias items")
	}
	if src.Meta["channel"] != "store" {
		t.Fatal("shallow clone must alias meta")
	}
	// Top-level fields are still independent copies.
	dst.Customer = "mallory"
	if src.Customer != "alice" {
		t.Fatal("top-level field leaked")
	}
}
