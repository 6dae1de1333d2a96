// Package repository содержит файловое хранилище дел: на каждое дело
// сохраняются текст претензии и JSON-запись, ключом служит идентификатор дела.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/debtclear/intake-service/internal/caseid"
	"github.com/debtclear/intake-service/internal/model"
)

// ErrCaseNotFound возвращается, если дело с указанным идентификатором не найдено.
var ErrCaseNotFound = errors.New("case not found")

// FileStore хранит дела в виде плоских файлов в одном каталоге.
// Хранилище append-only: записи не изменяются и не удаляются.
type FileStore struct {
	dir string
}

// NewFileStore создаёт хранилище в указанном каталоге, при необходимости создавая его.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// SaveCase сохраняет текст претензии и запись дела, возвращая путь к документу.
func (s *FileStore) SaveCase(ctx context.Context, c *model.Case, letterText string) (string, error) {
	if !caseid.Valid(c.CaseID) {
		return "", fmt.Errorf("invalid case id %q", c.CaseID)
	}

	docPath := filepath.Join(s.dir, c.CaseID+".txt")
	if err := os.WriteFile(docPath, []byte(letterText), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	record := *c
	record.DocumentPath = docPath

	data, err := json.MarshalIndent(&record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal case record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, c.CaseID+".json"), data, 0o644); err != nil {
		return "", fmt.Errorf("write case record: %w", err)
	}

	return docPath, nil
}

// GetCase возвращает запись дела по идентификатору.
// Идентификатор проверяется по формату до обращения к файловой системе.
func (s *FileStore) GetCase(ctx context.Context, id string) (*model.Case, error) {
	if !caseid.Valid(id) {
		return nil, ErrCaseNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("read case record: %w", err)
	}

	var c model.Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal case record: %w", err)
	}
	return &c, nil
}
