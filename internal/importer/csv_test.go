package importer

import (
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Name, Phone, Email, City, Source, Property_Type, Budget",
		"Alice Buyer, 0912000000, alice@mail.test, Austin, website, apartment, 450000",
		"Ben Renter, , ben@mail.test, , referral, , ",
		", 0913000000, , , , , ",
		"Cara Investor, , , , , , ",
		"Dan Seller, 0914000000, , , , , not-a-number",
	}, "\n")

	records, rowErrors, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	first := records[0]
	if first.Name != "Alice Buyer" || first.Phone != "0912000000" || first.City != "Austin" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.PropertyType != "apartment" {
		t.Errorf("property_type header must map to PropertyType, got %q", first.PropertyType)
	}
	if first.Budget != 450000 {
		t.Errorf("budget = %v, want 450000", first.Budget)
	}
	if records[1].Name != "Ben Renter" || records[1].Email != "ben@mail.test" {
		t.Errorf("unexpected second record: %+v", records[1])
	}

	if len(rowErrors) != 3 {
		t.Fatalf("got %d row errors, want 3: %v", len(rowErrors), rowErrors)
	}
	wantReasons := map[int]string{
		4: "name required",
		5: "phone or email required",
		6: "invalid budget",
	}
	for _, re := range rowErrors {
		want, ok := wantReasons[re.Row]
		if !ok {
			t.Errorf("unexpected row error at row %d: %s", re.Row, re.Reason)
			continue
		}
		if re.Reason != want {
			t.Errorf("row %d reason = %q, want %q", re.Row, re.Reason, want)
		}
	}
}

func TestParseCSVHeaderVariants(t *testing.T) {
	input := "NAME,PROPERTY TYPE,propertyType,email\nAlice,flat,loft,alice@mail.test\n"
	records, rowErrors, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrors)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	// later duplicate columns win the index
	if records[0].PropertyType != "loft" {
		t.Errorf("PropertyType = %q, want %q", records[0].PropertyType, "loft")
	}
}

func TestParseCSVMissingNameColumn(t *testing.T) {
	if _, _, err := ParseCSV(strings.NewReader("phone,email\n0912,x@y.test\n")); err == nil {
		t.Fatal("expected error for missing name column")
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	records, rowErrors, err := ParseCSV(strings.NewReader(""))
	if err != nil || records != nil || rowErrors != nil {
		t.Fatalf("empty input should parse to nothing, got %v %v %v", records, rowErrors, err)
	}
}
