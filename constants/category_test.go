package constants

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in     string
		want   DocumentCategory
		wantOK bool
	}{
		{"invoice", CategoryInvoice, true},
		{"  Invoice ", CategoryInvoice, true},
		{"CONTRACT", CategoryContract, true},
		{"general", CategoryGeneral, true},
		{"receipt", CategoryGeneral, false},
		{"", CategoryGeneral, false},
	}
	for _, tc := range cases {
		got, ok := ParseCategory(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNeedsClassification(t *testing.T) {
	if !DocumentCategory("").NeedsClassification() {
		t.Error("empty category should need classification")
	}
	if !CategoryGeneral.NeedsClassification() {
		t.Error("general should need classification")
	}
	if CategoryInvoice.NeedsClassification() {
		t.Error("invoice should not be reclassified")
	}
	if CategoryContract.NeedsClassification() {
		t.Error("contract should not be reclassified")
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() || StatusProcessing.IsTerminal() {
		t.Error("pending/processing are not terminal")
	}
	if !StatusExtracted.IsTerminal() || !StatusFailed.IsTerminal() {
		t.Error("extracted/failed are terminal")
	}
}
