package local

import (
	"bytes"
	"os"
	"testing"
)

func TestSaveTempRoundTrip(t *testing.T) {
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	path, err := SaveTemp(bytes.NewReader(content), ".jpeg")
	if err != nil {
		t.Fatalf("save temp: %v", err)
	}
	defer Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Fatalf("content mismatch")
	}

	if err = Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err = os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should be gone")
	}
}
