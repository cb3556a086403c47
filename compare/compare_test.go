package compare

import (
	"testing"

	"github.com/oticaisis/storefront/catalog"
)

func p(id string) catalog.Product {
	return catalog.Product{ID: id, Name: "Produto " + id}
}

func TestList_AddOpensTray(t *testing.T) {
	var l List
	if notice, added := l.Add(p("1")); !added || notice != "" {
		t.Fatalf("Add = %q, %v; want added", notice, added)
	}
	if !l.Open {
		t.Error("tray did not open on first add")
	}
}

func TestList_RejectsDuplicate(t *testing.T) {
	var l List
	l.Add(p("1"))

	notice, added := l.Add(p("1"))
	if added {
		t.Fatal("duplicate was added")
	}
	if notice != NoticeDuplicate {
		t.Errorf("notice = %q, want %q", notice, NoticeDuplicate)
	}
	if len(l.Items) != 1 {
		t.Errorf("len = %d, want 1", len(l.Items))
	}
}

func TestList_RejectsFourthProduct(t *testing.T) {
	var l List
	l.Add(p("1"))
	l.Add(p("2"))
	l.Add(p("3"))

	notice, added := l.Add(p("4"))
	if added {
		t.Fatal("fourth product was added")
	}
	if notice != NoticeFull {
		t.Errorf("notice = %q, want %q", notice, NoticeFull)
	}
}

func TestList_RemoveLastClosesTray(t *testing.T) {
	var l List
	l.Add(p("1"))
	l.Remove("1")

	if len(l.Items) != 0 {
		t.Errorf("len = %d, want 0", len(l.Items))
	}
	if l.Open {
		t.Error("tray stayed open with no items")
	}
}

func TestList_RemoveAbsentIsNoop(t *testing.T) {
	var l List
	l.Add(p("1"))
	l.Remove("nope")
	if len(l.Items) != 1 {
		t.Errorf("len = %d, want 1", len(l.Items))
	}
}

func TestList_Clear(t *testing.T) {
	var l List
	l.Add(p("1"))
	l.Add(p("2"))
	l.Clear()
	if len(l.Items) != 0 || l.Open {
		t.Errorf("after Clear: items = %d, open = %v", len(l.Items), l.Open)
	}
}
