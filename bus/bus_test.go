package bus

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	b := New()
	b.Write(0x1234, 0x42)
	if got := b.Read(0x1234, false); got != 0x42 {
		t.Errorf("Read(0x1234) = %#02x, want 0x42", got)
	}
}

func TestResetFillsWithOnes(t *testing.T) {
	b := New()
	b.Write(0x0000, 0x00)
	b.Reset()
	if got := b.Read(0x0000, false); got != 0xFF {
		t.Errorf("Read(0x0000) after Reset = %#02x, want 0xFF", got)
	}
}

func TestReadOnlyHintDoesNotChangeValue(t *testing.T) {
	b := New()
	b.Write(0x00FF, 0x99)
	if got := b.Read(0x00FF, true); got != 0x99 {
		t.Errorf("Read(0x00FF, true) = %#02x, want 0x99", got)
	}
}

func TestLoadImage(t *testing.T) {
	b := New()
	image := []byte{0xA9, 0x14}
	if err := b.LoadImage(0x8000, image); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := b.Read(0x8000, false); got != 0xA9 {
		t.Errorf("Read(0x8000) = %#02x, want 0xA9", got)
	}
	if got := b.Read(0x8001, false); got != 0x14 {
		t.Errorf("Read(0x8001) = %#02x, want 0x14", got)
	}
}

func TestLoadImageTooLarge(t *testing.T) {
	b := New()
	err := b.LoadImage(0xFFFE, make([]byte, 16))
	if err == nil {
		t.Fatal("LoadImage: expected an error for an oversized image, got nil")
	}
	if _, ok := err.(*ImageError); !ok {
		t.Errorf("LoadImage: error type = %T, want *ImageError", err)
	}
}
