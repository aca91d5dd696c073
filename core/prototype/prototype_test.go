package prototype

import "testing"

type node struct {
	Label    string
	Children []node
}

// node.Clone is deep: the children slice is cloned recursively.
func (n node) Clone() node {
	return node{Label: n.Label, Children: CloneSlice(n.Children)}
}

func TestCloneSlice_Deep(t *testing.T) {
	src := []node{{Label: "a", Children: []node{{Label: "a1"}}}}
	dst := CloneSlice(src)

	dst[0].Children[0].Label = "changed"
	if src[0].Children[0].Label != "a1" {
		t.Fatalf("deep clone aliased nested slice: %q", src[0].Children[0].Label)
	}
}

func TestCopySlice_TopLevelOnly(t *testing.T) {
	src := []int{1, 2, 3}
	dst := CopySlice(src)
	dst[0] = 9
	if src[0] != 1 {
		t.Fatalf("copy aliased backing array")
	}
	if CopySlice[int](nil) != nil {
		t.Fatal("nil in, nil out")
	}
}

func TestCopyMap(t *testing.T) {
	src := map[string]int{"a": 1}
	dst := CopyMap(src)
	dst["a"] = 2
	if src["a"] != 1 {
		t.Fatalf("copy aliased map")
	}
	if CopyMap[string, int](nil) != nil {
		t.Fatal("nil in, nil out")
	}
}
