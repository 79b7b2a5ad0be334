package vm

import "testing"

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name  string
		image []byte
		want  error
	}{
		{"valid magic only", []byte{0x4E, 0x56, 0x4D, 0x30}, nil},
		{"valid magic with body", []byte{0x4E, 0x56, 0x4D, 0x30, 0x00}, nil},
		{"wrong magic", []byte{0x00, 0x00, 0x00, 0x00}, ErrBadMagic},
		{"too short", []byte{0x4E, 0x56, 0x4D}, ErrBadMagic},
		{"empty", nil, ErrBadMagic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateImage(tt.image); err != tt.want {
				t.Errorf("ValidateImage() = %v, want %v", err, tt.want)
			}
		})
	}
}
