package services

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// ErrNotFound wraps gorm.ErrRecordNotFound with the name of what was missing.
type ErrNotFound struct {
	Entity string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s não encontrado(a)", e.Entity)
}

func (e *ErrNotFound) Unwrap() error {
	return gorm.ErrRecordNotFound
}

// notFound translates gorm.ErrRecordNotFound into *ErrNotFound for entity.
func notFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ErrNotFound{Entity: entity}
	}
	return err
}

// exists reports whether a row of model with the given id exists.
func exists(db *gorm.DB, model interface{}, id int) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

const msgInvalidChoice = "Faça uma escolha válida. Sua escolha não é uma das escolhas disponíveis."

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
