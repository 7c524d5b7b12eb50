package normalize

import "testing"

func TestNormalizeCountry_ResolvesToCanonicalDisplayName(t *testing.T) {
	cases := map[string]string{
		"US":  "United States",
		"UK":  "United Kingdom",
		"CZ":  "Czech Republic",
		"":    "",
		"XYZ": "XYZ",
	}
	for in, want := range cases {
		if got := NormalizeCountry(in); got != want {
			t.Fatalf("NormalizeCountry(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeCountry_SanctionedJurisdictionOverrides(t *testing.T) {
	cases := map[string]string{
		"KR":              "South Korea",
		"TW":              "Taiwan",
		"VG":              "Virgin Islands",
		"VI":              "Virgin Islands",
		"MF":              "Saint Martin",
		"SX":              "Saint Martin",
		"IR":              "Iran",
		"KP":              "North Korea",
		"RU":              "Russia",
		"SY":              "Syria",
		"VE":              "Venezuela",
		"Islamic Republic of Iran": "Iran",
		"DPRK":            "North Korea",
	}
	for in, want := range cases {
		if got := NormalizeCountry(in); got != want {
			t.Fatalf("NormalizeCountry(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeCountry_UnknownPassesThroughUnchanged(t *testing.T) {
	if got := NormalizeCountry("Narnia"); got != "Narnia" {
		t.Fatalf("expected unknown country to pass through unchanged, got %q", got)
	}
}

func TestNormalizeGender_RecognizesCommonForms(t *testing.T) {
	if got := NormalizeGender("M"); got != "male" {
		t.Fatalf("expected male, got %q", got)
	}
	if got := NormalizeGender("woman"); got != "female" {
		t.Fatalf("expected female, got %q", got)
	}
	if got := NormalizeGender("x"); got != "unknown" {
		t.Fatalf("expected unknown for unrecognized gender, got %q", got)
	}
	if got := NormalizeGender(""); got != "unknown" {
		t.Fatalf("expected unknown for empty gender, got %q", got)
	}
	if got := NormalizeGender("guy"); got != "male" {
		t.Fatalf("expected male for guy, got %q", got)
	}
	if got := NormalizeGender("gal"); got != "female" {
		t.Fatalf("expected female for gal, got %q", got)
	}
}

func TestNormalizePhone_KeepsOnlyDigits(t *testing.T) {
	if got := NormalizePhone("+1 (555) 123-4567"); got != "15551234567" {
		t.Fatalf("expected 15551234567, got %q", got)
	}
	if got := NormalizePhone("555.123.4567"); got != "5551234567" {
		t.Fatalf("expected 5551234567, got %q", got)
	}
}

func TestNormalizeIdentifier_StripsPunctuationAndCase(t *testing.T) {
	if got := NormalizeIdentifier("AB-123/456"); got != "ab123456" {
		t.Fatalf("expected ab123456, got %q", got)
	}
}

func TestNormalizeAddressLine_CollapsesWhitespace(t *testing.T) {
	if got := NormalizeAddressLine("  123   Main   St.  "); got != "123 main st." {
		t.Fatalf("expected collapsed lowercase address, got %q", got)
	}
}
