package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// DiskStore хранит загруженные файлы на локальном диске. Имя файла складывается из
// отметки времени загрузки и оригинального имени, как и отдает их статика /uploads.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating uploads dir %s", dir)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

// Save записывает содержимое src в каталог хранилища и возвращает итоговое имя файла.
func (s *DiskStore) Save(src io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	return s.save(src, name)
}

func (s *DiskStore) save(src io.Reader, name string) (string, error) {
	dst, createErr := os.Create(filepath.Join(s.dir, name))
	if createErr != nil {
		return "", errors.Wrap(createErr, "creating upload file")
	}
	defer dst.Close() //nolint:errcheck

	if _, copyErr := io.Copy(dst, src); copyErr != nil {
		return "", errors.Wrap(copyErr, "writing upload file")
	}
	return name, nil
}
