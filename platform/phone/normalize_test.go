package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(402) 555-1234", "+14025551234"},
		{"402-555-1234", "+14025551234"},
		{"+14025551234", "+14025551234"},
		{"  +14025551234  ", "+14025551234"},
		{"not a phone", "not a phone"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeE164(tt.in); got != tt.want {
			t.Errorf("NormalizeE164(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
