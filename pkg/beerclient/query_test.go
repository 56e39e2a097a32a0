package beerclient

import (
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestListQueryPagination(t *testing.T) {
	tests := []struct {
		name       string
		pageNumber *int
		pageSize   *int
		wantNumber string
		wantSize   string
	}{
		{name: "defaults", wantNumber: "0", wantSize: "25"},
		{name: "first page", pageNumber: ptr(1), wantNumber: "0", wantSize: "25"},
		{name: "one based converted", pageNumber: ptr(5), pageSize: ptr(10), wantNumber: "4", wantSize: "10"},
		{name: "zero page number", pageNumber: ptr(0), wantNumber: "0", wantSize: "25"},
		{name: "negative page number", pageNumber: ptr(-3), wantNumber: "0", wantSize: "25"},
		{name: "size at cap", pageSize: ptr(1000), wantNumber: "0", wantSize: "1000"},
		{name: "size clamped", pageSize: ptr(1001), wantNumber: "0", wantSize: "1000"},
		{name: "zero size passes through", pageSize: ptr(0), wantNumber: "0", wantSize: "0"},
		{name: "negative size passes through", pageSize: ptr(-5), wantNumber: "0", wantSize: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ListQuery(ListParams{PageNumber: tt.pageNumber, PageSize: tt.pageSize})
			if got := q.Get("pageNumber"); got != tt.wantNumber {
				t.Fatalf("pageNumber = %q, want %q", got, tt.wantNumber)
			}
			if got := q.Get("pageSize"); got != tt.wantSize {
				t.Fatalf("pageSize = %q, want %q", got, tt.wantSize)
			}
		})
	}
}

func TestListQueryNoArgumentsEncodesDefaultsOnly(t *testing.T) {
	if got := ListQuery(ListParams{}).Encode(); got != "pageNumber=0&pageSize=25" {
		t.Fatalf("unexpected query %q", got)
	}
}

func TestListQueryAllFilters(t *testing.T) {
	q := ListQuery(ListParams{
		BeerName:      ptr("IPA"),
		ShowInventory: ptr(true),
		PageNumber:    ptr(2),
		PageSize:      ptr(2000),
	})
	want := "beerName=IPA&pageNumber=1&pageSize=1000&showInventory=true"
	if got := q.Encode(); got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
}

func TestListQueryShowInventoryOnlyWhenTrue(t *testing.T) {
	for _, show := range []*bool{nil, ptr(false)} {
		q := ListQuery(ListParams{ShowInventory: show})
		if q.Has("showInventory") {
			t.Fatalf("showInventory present for %v", show)
		}
	}
	if got := ListQuery(ListParams{ShowInventory: ptr(true)}).Get("showInventory"); got != "true" {
		t.Fatalf("expected showInventory=true, got %q", got)
	}
}

func TestListQueryNameAndStyleOmittedWhenNil(t *testing.T) {
	q := ListQuery(ListParams{})
	if q.Has("beerName") || q.Has("beerStyle") {
		t.Fatalf("expected name/style to be omitted, got %v", q)
	}

	style := StylePaleAle
	q = ListQuery(ListParams{BeerName: ptr(""), BeerStyle: &style})
	if !q.Has("beerName") || q.Get("beerName") != "" {
		t.Fatalf("expected explicit empty beerName to be sent, got %v", q)
	}
	if q.Get("beerStyle") != "PALE_ALE" {
		t.Fatalf("unexpected beerStyle %q", q.Get("beerStyle"))
	}
}

func TestParseBeerStyle(t *testing.T) {
	tests := map[string]BeerStyle{
		"ipa":      StyleIPA,
		" Lager ":  StyleLager,
		"pale-ale": StylePaleAle,
		"PALE_ALE": StylePaleAle,
		"pale ale": StylePaleAle,
	}
	for in, want := range tests {
		got, err := ParseBeerStyle(in)
		if err != nil {
			t.Fatalf("ParseBeerStyle(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseBeerStyle(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseBeerStyle("lambic"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}
