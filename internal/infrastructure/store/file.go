package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var _ BatchBackend = (*FileBackend)(nil)

// FileBackend guarda cada clave como <dir>/<key>.json. Las escrituras van a un archivo
// temporal y se renombran, así un corte nunca deja un JSON a medias.
type FileBackend struct {
	dir string
}

// NewFileBackend crea el directorio si no existe.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: crear directorio %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileBackend) Load(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("store: leer %s: %w", key, err)
	}
	return raw, nil
}

func (f *FileBackend) Save(ctx context.Context, key string, value []byte) error {
	return f.SaveAll(ctx, map[string][]byte{key: value})
}

// SaveAll escribe primero todos los temporales y solo entonces los renombra.
func (f *FileBackend) SaveAll(_ context.Context, values map[string][]byte) error {
	temps := make(map[string]string, len(values))
	cleanup := func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}
	for key, value := range values {
		tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
		if err != nil {
			cleanup()
			return fmt.Errorf("store: temporal %s: %w", key, err)
		}
		temps[key] = tmp.Name()
		if _, err := tmp.Write(value); err != nil {
			_ = tmp.Close()
			cleanup()
			return fmt.Errorf("store: escribir %s: %w", key, err)
		}
		if err := tmp.Close(); err != nil {
			cleanup()
			return fmt.Errorf("store: cerrar %s: %w", key, err)
		}
	}
	for key, tmp := range temps {
		if err := os.Rename(tmp, f.path(key)); err != nil {
			cleanup()
			return fmt.Errorf("store: reemplazar %s: %w", key, err)
		}
		delete(temps, key)
	}
	return nil
}
