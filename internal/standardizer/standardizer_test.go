package standardizer

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "Only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "Basic street address",
			input:    "123 Main Street",
			expected: "123 main st",
		},
		{
			name:     "Address with directional",
			input:    "123 North Main Street",
			expected: "123 n main st",
		},
		{
			name:     "Address with punctuation",
			input:    "123 Main St.,",
			expected: "123 main st",
		},
		{
			name:     "Abbreviated directional with period",
			input:    "123 E. 23rd St",
			expected: "123 e 23rd st",
		},
		{
			name:     "Full directional",
			input:    "123 East 23rd Street",
			expected: "123 e 23rd st",
		},
		{
			name:     "Compound directional is not split",
			input:    "4040 Northeast Highland Drive",
			expected: "4040 ne highland dr",
		},
		{
			name:     "Compound directional uppercase",
			input:    "6060 WESTERN HEIGHTS COURT SOUTHWEST",
			expected: "6060 western heights ct sw",
		},
		{
			name:     "Substring of a word is untouched",
			input:    "5050 Eastern Parkway",
			expected: "5050 eastern parkway",
		},
		{
			name:     "Multiple spaces and tabs",
			input:    "1010   Maple \t  Lane ",
			expected: "1010 maple ln",
		},
		{
			name:     "Comma between words is deleted without a space",
			input:    "10 Oak Avenue,Suite 4",
			expected: "10 oak avenuesuite 4",
		},
		{
			name:     "Comma followed by a space",
			input:    "10 Oak Avenue, Suite 4",
			expected: "10 oak ave suite 4",
		},
		{
			name:     "Other punctuation is kept",
			input:    "789 Oak Drive Apt #301",
			expected: "789 oak dr apt #301",
		},
		{
			name:     "Hyphen is a word boundary",
			input:    "12 North-West Road",
			expected: "12 n-w rd",
		},
		{
			name:     "All suffixes",
			input:    "Street Avenue Road Boulevard Drive Lane Court Place",
			expected: "st ave rd blvd dr ln ct pl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeAddress(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeAddressIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"  ",
		"123 East 23rd Street",
		"123 E. 23rd St",
		"4040 Southwest Highland TERRACE, Unit #B-12, Floor 3",
		"PO Box 12345",
		"1 North South East West Northeast Northwest Southeast Southwest",
		"St. Place,,, Court.",
	}

	for _, input := range inputs {
		once := NormalizeAddress(input)
		twice := NormalizeAddress(once)
		if once != twice {
			t.Errorf("NormalizeAddress not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeAddressCaseAndPunctuationInsensitive(t *testing.T) {
	if a, b := NormalizeAddress("123 Main St.,"), NormalizeAddress("123 MAIN ST"); a != b {
		t.Errorf("expected %q and %q to be equal", a, b)
	}
}

func TestNormalizeText(t *testing.T) {
	if got := NormalizeText(pgtype.Text{}); got != "" {
		t.Errorf("NormalizeText(NULL) = %q, want empty", got)
	}
	if got := NormalizeText(pgtype.Text{String: "456 Oak Avenue", Valid: true}); got != "456 oak ave" {
		t.Errorf("NormalizeText() = %q, want %q", got, "456 oak ave")
	}
}

func TestNewNormalizerCustomTable(t *testing.T) {
	table := AbbreviationTable{"terrace": "ter", "Highway": "hwy"}
	n := NewNormalizer(table)

	// Mutating the caller's map must not affect the compiled normalizer
	table["street"] = "xx"

	if got := n.Normalize("9 Coastal Highway Terrace Street"); got != "9 coastal hwy ter street" {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestDefaultAbbreviationsIsACopy(t *testing.T) {
	table := DefaultAbbreviations()
	if len(table) != 16 {
		t.Fatalf("expected 16 default abbreviations, got %d", len(table))
	}
	table["street"] = "changed"

	if got := NormalizeAddress("1 Main Street"); got != "1 main st" {
		t.Errorf("default table was mutated: %q", got)
	}
}
