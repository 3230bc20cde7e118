package colour

import (
	"math"
	"strings"
	"testing"
)

func TestHexToOklch(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		wantOK bool
	}{
		{
			name:   "six digit hex",
			hex:    "#3366cc",
			wantOK: true,
		},
		{
			name:   "three digit hex",
			hex:    "#36c",
			wantOK: true,
		},
		{
			name:   "white",
			hex:    "#ffffff",
			wantOK: true,
		},
		{
			name:   "missing hash",
			hex:    "3366cc",
			wantOK: false,
		},
		{
			name:   "garbage",
			hex:    "#zzzzzz",
			wantOK: false,
		},
		{
			name:   "empty",
			hex:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := HexToOklch(tt.hex)
			if ok != tt.wantOK {
				t.Errorf("HexToOklch(%q) ok = %v, want %v", tt.hex, ok, tt.wantOK)
			}
		})
	}
}

func TestHexToOklchWhite(t *testing.T) {
	o, ok := HexToOklch("#ffffff")
	if !ok {
		t.Fatal("HexToOklch(#ffffff) failed")
	}
	if math.Abs(o.L-1.0) > 1e-3 {
		t.Errorf("white lightness = %f, want ~1.0", o.L)
	}
	if o.C > 1e-3 {
		t.Errorf("white chroma = %f, want ~0", o.C)
	}
}

func TestHexToOklchAchromaticHue(t *testing.T) {
	// Achromatic colours have undefined hue; the adapter reports 0.
	greys := []string{"#000000", "#808080", "#ffffff"}
	for _, hex := range greys {
		o, ok := HexToOklch(hex)
		if !ok {
			t.Fatalf("HexToOklch(%q) failed", hex)
		}
		if o.H != 0 {
			t.Errorf("HexToOklch(%q) hue = %f, want 0", hex, o.H)
		}
	}
}

func TestOklchHexRoundTrip(t *testing.T) {
	// In-gamut colours should survive hex -> OKLCH -> hex within the
	// precision lost to 8-bit quantisation.
	tests := []struct {
		name string
		hex  string
	}{
		{name: "blue", hex: "#3366cc"},
		{name: "teal", hex: "#2a9d8f"},
		{name: "warm red", hex: "#e76f51"},
		{name: "olive", hex: "#6b8e23"},
		{name: "plum", hex: "#8e4585"},
	}

	const tolerance = 2.5e-3

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, ok := HexToOklch(tt.hex)
			if !ok {
				t.Fatalf("HexToOklch(%q) failed", tt.hex)
			}

			second, ok := HexToOklch(first.Hex())
			if !ok {
				t.Fatalf("HexToOklch(%q) failed on round trip", first.Hex())
			}

			if math.Abs(first.L-second.L) > tolerance {
				t.Errorf("lightness drifted: %f -> %f", first.L, second.L)
			}
			if math.Abs(first.C-second.C) > tolerance {
				t.Errorf("chroma drifted: %f -> %f", first.C, second.C)
			}
			hueDiff := math.Abs(first.H - second.H)
			if hueDiff > 180 {
				hueDiff = 360 - hueDiff
			}
			if hueDiff > 1.0 {
				t.Errorf("hue drifted: %f -> %f", first.H, second.H)
			}
		})
	}
}

func TestOklchHexClampsOutOfGamut(t *testing.T) {
	// Chroma 0.4 at high lightness is outside sRGB; the result must still
	// be a valid hex string rather than an error.
	o := OKLCH{L: 0.95, C: 0.4, H: 145}
	hex := o.Hex()
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		t.Errorf("Hex() = %q, want #rrggbb format", hex)
	}
	if _, ok := HexToOklch(hex); !ok {
		t.Errorf("clamped hex %q did not parse back", hex)
	}
}

func TestOklchCSS(t *testing.T) {
	tests := []struct {
		name string
		in   OKLCH
		want string
	}{
		{
			name: "typical",
			in:   OKLCH{L: 0.97, C: 0.15, H: 260},
			want: "oklch(0.970 0.150 260.0)",
		},
		{
			name: "black",
			in:   OKLCH{L: 0, C: 0, H: 0},
			want: "oklch(0.000 0.000 0.0)",
		},
		{
			name: "fractional hue",
			in:   OKLCH{L: 0.52, C: 0.123, H: 29.23},
			want: "oklch(0.520 0.123 29.2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}
