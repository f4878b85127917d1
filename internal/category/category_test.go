package category

import "testing"

func TestAll(t *testing.T) {
	cats := All()
	if len(cats) != 14 {
		t.Fatalf("expected 14 categories, got %d", len(cats))
	}
	if cats[0] != Fruits || cats[len(cats)-1] != Other {
		t.Errorf("unexpected ordering: first %q last %q", cats[0], cats[len(cats)-1])
	}
	for _, c := range cats {
		if !Valid(c) {
			t.Errorf("All() returned invalid category %q", c)
		}
		if Label(c) == "" {
			t.Errorf("category %q has no label", c)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	cats := All()
	cats[0] = "tampered"
	if All()[0] != Fruits {
		t.Error("mutating All() result leaked into package state")
	}
}

func TestValid(t *testing.T) {
	for _, c := range []string{"dairy", "household care", "other"} {
		if !Valid(c) {
			t.Errorf("Valid(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "Dairy", "candy aisle", "household"} {
		if Valid(c) {
			t.Errorf("Valid(%q) = true, want false", c)
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"milk", Dairy},
		{"  Milk  ", Dairy},
		{"almond milk", Dairy},
		{"chicken breast", Meat},
		{"frozen pizza", Frozen},
		{"sparkling water", Beverages},
		{"cherry tomatoes", Vegetables},
		{"dog food", Pet},
		{"light bulbs", Home},
		{"paper towels", HouseholdCare},
		{"mystery thing", Other},
		{"", Other},
		{"   ", Other},
	}
	for _, tt := range tests {
		if got := Suggest(tt.name); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSuggestExactBeatsSubstring(t *testing.T) {
	// "ice cream" is exact Frozen even though "cream" alone is Dairy.
	if got := Suggest("ice cream"); got != Frozen {
		t.Errorf("Suggest(ice cream) = %q, want %q", got, Frozen)
	}
}
