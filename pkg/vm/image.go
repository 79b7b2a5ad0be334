package vm

// Magic is the 4-byte prefix every valid bytecode image must begin
// with: the literal bytes 0x4E, 0x56, 0x4D, 0x30 ("NVM0").
var Magic = [4]byte{0x4E, 0x56, 0x4D, 0x30}

// ValidateImage inspects the first four bytes of image and compares
// them byte-wise against Magic. Images shorter than four bytes are
// rejected. No other validation is performed here; per-instruction
// bounds checks are the Interpreter's responsibility.
func ValidateImage(image []byte) error {
	if len(image) < len(Magic) {
		return ErrBadMagic
	}
	for i, b := range Magic {
		if image[i] != b {
			return ErrBadMagic
		}
	}
	return nil
}
