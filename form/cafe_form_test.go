package form

import (
	"strings"
	"testing"

	"cafewifi/model"
)

func validForm() *CafeForm {
	return &CafeForm{
		Name:         "Joe's",
		MapURL:       "https://maps.example/x",
		ImgURL:       "https://img.example/y",
		Location:     "Town",
		Seats:        "5-10",
		HasToilet:    "Yes",
		HasWifi:      "Yes",
		HasSockets:   "No",
		CanTakeCalls: "No",
		CoffeePrice:  "£2.50",
	}
}

func TestValidFormHasNoErrors(t *testing.T) {
	if errs := validForm().Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateReportsFieldErrors(t *testing.T) {
	f := validForm()
	f.Name = "   "
	f.MapURL = "not a url"
	f.Seats = ""
	f.HasWifi = "Maybe"
	f.CanTakeCalls = ""
	f.CoffeePrice = strings.Repeat("£", 251)

	errs := f.Validate()

	want := map[string]string{
		"name":           "This field is required.",
		"map_url":        "Invalid URL.",
		"seats":          "This field is required.",
		"has_wifi":       "Not a valid choice.",
		"can_take_calls": "This field is required.",
		"coffee_price":   "Field cannot be longer than 250 characters.",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("%s: expected %q, got %q", field, msg, errs[field])
		}
	}
	if _, ok := errs["img_url"]; ok {
		t.Errorf("img_url should be valid, got %q", errs["img_url"])
	}
	if len(errs) != len(want) {
		t.Errorf("expected %d errors, got %v", len(want), errs)
	}
}

func TestCafeKeepsAmenitiesIndependent(t *testing.T) {
	f := validForm()
	f.HasToilet = "No"
	f.HasWifi = "Yes"
	f.HasSockets = "No"
	f.CanTakeCalls = "No"

	cafe, err := f.Cafe()
	if err != nil {
		t.Fatalf("Cafe failed: %v", err)
	}
	if cafe.HasToilet != model.No || cafe.HasWifi != model.Yes || cafe.HasSockets != model.No || cafe.CanTakeCalls != model.No {
		t.Errorf("unexpected answers %v %v %v %v", cafe.HasToilet, cafe.HasWifi, cafe.HasSockets, cafe.CanTakeCalls)
	}

	f.HasSockets = "Yes"
	cafe, _ = f.Cafe()
	if cafe.HasSockets != model.Yes || cafe.CanTakeCalls != model.No {
		t.Errorf("sockets must not follow calls: sockets=%v calls=%v", cafe.HasSockets, cafe.CanTakeCalls)
	}
}

func TestCafeOptionalPrice(t *testing.T) {
	f := validForm()
	f.CoffeePrice = ""

	cafe, err := f.Cafe()
	if err != nil {
		t.Fatalf("Cafe failed: %v", err)
	}
	if cafe.CoffeePrice != nil {
		t.Errorf("expected nil price, got %q", *cafe.CoffeePrice)
	}
}

func TestCafeRejectsUnknownChoice(t *testing.T) {
	f := validForm()
	f.HasToilet = "1"
	if _, err := f.Cafe(); err == nil {
		t.Fatal("expected error for invalid choice token")
	}
}

func TestBlankFieldsDescriptor(t *testing.T) {
	fields := Blank().Fields(map[string]string{"location": "This field is required."})

	if len(fields) != 10 {
		t.Fatalf("expected 10 fields, got %d", len(fields))
	}
	choices := 0
	for _, f := range fields {
		if f.Kind == KindChoice {
			choices++
			if len(f.Choices) != 2 || f.Choices[0].Value != "Yes" || f.Choices[1].Value != "No" {
				t.Errorf("%s: unexpected choices %v", f.Name, f.Choices)
			}
			if f.Value != "Yes" {
				t.Errorf("%s: expected default Yes, got %q", f.Name, f.Value)
			}
		}
		if f.Name == "location" && f.Error == "" {
			t.Error("expected location error to be attached")
		}
		if f.Name == "coffee_price" && f.Required {
			t.Error("coffee_price should be optional")
		}
	}
	if choices != 4 {
		t.Errorf("expected 4 choice fields, got %d", choices)
	}
}

func TestValidateCafe(t *testing.T) {
	cafe, _ := validForm().Cafe()
	if errs := ValidateCafe(&cafe); len(errs) != 0 {
		t.Fatalf("expected valid cafe, got %v", errs)
	}

	cafe.ImgURL = "img.example/y"
	cafe.Location = ""
	errs := ValidateCafe(&cafe)
	if errs["img_url"] != "Invalid URL." || errs["location"] != "This field is required." {
		t.Errorf("unexpected errors %v", errs)
	}
}
