package utils

import (
	"strings"
	"testing"
)

func TestEncodeDataURL(t *testing.T) {
	got := EncodeDataURL("image/png", []byte{1, 2, 3})
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("EncodeDataURL = %q", got)
	}
}

func TestEncodeDataURLSniffsType(t *testing.T) {
	// PNG magic bytes
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	got := EncodeDataURL("", png)
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Errorf("sniffed EncodeDataURL = %q", got)
	}
}
