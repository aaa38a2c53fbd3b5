package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"run.mdat", MDAT},
		{"RUN.MDAT", MDAT},
		{"eis-0.5H-1.0air.Mdat", MDAT},
		{"data/archive.mdat", MDAT},
		{"run.zip", Unknown},
		{"run.mdat.bak", Unknown},
		{"run", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"zip signature", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}, MDAT},
		{"plain text", []byte("Freq(Hz)  Z'(a)  Z''(b)"), Unknown},
		{"too short", []byte{0x50, 0x4B}, Unknown},
		{"empty", nil, Unknown},
		{"empty zip marker", []byte{0x50, 0x4B, 0x05, 0x06}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if MDAT.String() != "MDAT" {
		t.Errorf("MDAT.String() = %q", MDAT.String())
	}
	if Unknown.String() != "Unknown" {
		t.Errorf("Unknown.String() = %q", Unknown.String())
	}
	if MDAT.Extension() != ".mdat" {
		t.Errorf("MDAT.Extension() = %q", MDAT.Extension())
	}
	if Unknown.Extension() != "" {
		t.Errorf("Unknown.Extension() = %q", Unknown.Extension())
	}
}
