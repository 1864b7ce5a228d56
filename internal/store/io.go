package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// readFile читает файл целиком; отсутствие файла ошибкой не считается (nil, nil).
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// foreignEntry — элемент массива, который не подошёл под тип записи
// (например, поле другого типа в старом файле). Хранится как есть.
type foreignEntry struct {
	index int
	raw   json.RawMessage
	err   error
}

// decodeArray разбирает JSON-массив. Пустой файл и null дают пустой срез.
//
// Ошибкой считается только файл, который не является JSON-массивом.
// Элементы, не подходящие под T, возвращаются отдельно в foreign.
func decodeArray[T any](b []byte) ([]T, []foreignEntry, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return []T{}, nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(b, &elems); err != nil {
		return nil, nil, err
	}

	out := make([]T, 0, len(elems))
	var foreign []foreignEntry
	for i, raw := range elems {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			foreign = append(foreign, foreignEntry{index: i, raw: raw, err: err})
			continue
		}
		out = append(out, rec)
	}
	return out, foreign, nil
}

// encodeArray сериализует записи с отступом в 2 пробела; nil пишется как [].
//
// Элементы foreign возвращаются на свои прежние позиции, остальные места
// по порядку занимают records.
func encodeArray[T any](records []T, foreign []foreignEntry) ([]byte, error) {
	total := len(records) + len(foreign)
	elems := make([]any, 0, total)

	ri, fi := 0, 0
	for i := 0; i < total; i++ {
		switch {
		case fi < len(foreign) && (foreign[fi].index <= i || ri >= len(records)):
			elems = append(elems, foreign[fi].raw)
			fi++
		default:
			elems = append(elems, records[ri])
			ri++
		}
	}

	b, err := json.MarshalIndent(elems, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// writeFile пишет байты во временный файл и атомарно подменяет им path.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// после успешного rename файла tmp уже нет, Remove просто вернёт ошибку
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
