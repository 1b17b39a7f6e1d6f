package local

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SaveTemp spools an upload to a uniquely named file under the system
// temp directory and returns its path. Callers remove it on every exit
// path.
func SaveTemp(r io.Reader, ext string) (string, error) {
	dir := filepath.Join(os.TempDir(), "ghibli-detox")
	err := os.MkdirAll(dir, 0770)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, uuid.New().String()+ext)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	defer file.Close()
	_, err = io.Copy(file, r)
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func Remove(path string) error {
	return os.Remove(path)
}
