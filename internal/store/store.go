package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/medkeeper/internal/shared/logger"
)

// errLockUnavailable — файл блокировки нельзя создать или открыть
// (нет прав на каталог, файловая система только для чтения).
var errLockUnavailable = errors.New("lock file unavailable")

// Значения по умолчанию для Options.
const (
	DefaultDirMode     os.FileMode = 0o700
	DefaultFileMode    os.FileMode = 0o600
	DefaultLockTimeout             = 5 * time.Second
	DefaultLockRetry               = 20 * time.Millisecond
)

// Options — настройки хранилища.
type Options struct {
	DirMode  os.FileMode
	FileMode os.FileMode
	// LockTimeout ограничивает ожидание блокировки; 0 — ждать пока жив ctx.
	LockTimeout time.Duration
	// LockRetry — пауза между попытками взять блокировку.
	LockRetry time.Duration
	// KeepCorrupt — перед перезаписью битого файла сохранить его копию в <path>.corrupt.
	KeepCorrupt bool
	Log         *logger.Logger
}

// JSONFile — хранилище записей типа T в одном JSON-файле.
//
// Экземпляр не держит состояния между вызовами, поэтому его можно
// использовать из нескольких горутин: порядок задаёт файловая блокировка.
type JSONFile[T any] struct {
	path string
	opts Options
}

// New создаёт хранилище для файла path. Нулевые поля opts заменяются дефолтами.
func New[T any](path string, opts Options) *JSONFile[T] {
	if opts.DirMode == 0 {
		opts.DirMode = DefaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = DefaultFileMode
	}
	if opts.LockRetry <= 0 {
		opts.LockRetry = DefaultLockRetry
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	return &JSONFile[T]{path: path, opts: opts}
}

// Path возвращает путь к файлу хранилища.
func (s *JSONFile[T]) Path() string {
	return s.path
}

// Load возвращает все записи хранилища.
//
// Поведение:
//   - нет каталога или файла — пустой срез, на диске ничего не создаётся;
//   - файл не является JSON-массивом — пустой срез и предупреждение в лог;
//   - элементы, не подходящие под T, пропускаются (в файле они остаются);
//   - ошибки чтения и блокировки оборачиваются в serr.ErrStorage;
//   - если файл блокировки нельзя создать (каталог только для чтения),
//     чтение идёт без блокировки.
func (s *JSONFile[T]) Load(ctx context.Context) ([]T, error) {
	if _, err := os.Stat(filepath.Dir(s.path)); errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}

	unlock, err := s.lock(ctx, false)
	switch {
	case errors.Is(err, errLockUnavailable):
		s.opts.Log.Warn("lock file unavailable, reading without lock",
			zap.String("path", s.path),
			zap.Error(err),
		)
	case err != nil:
		return nil, err
	default:
		defer unlock()
	}

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.records, nil
}

// Update выполняет цикл чтение → изменение → запись под эксклюзивной блокировкой.
//
// fn получает текущие записи и возвращает новое содержимое файла.
// Если fn вернула ошибку, файл не трогается, а ошибка возвращается как есть
// (без обёртки ErrStorage), чтобы вызывающий мог проверить её через errors.Is.
func (s *JSONFile[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), s.opts.DirMode); err != nil {
		return fmt.Errorf("%w: create dir: %w", serr.ErrStorage, err)
	}

	unlock, err := s.lock(ctx, true)
	if err != nil {
		return err
	}
	defer unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	next, err := fn(doc.records)
	if err != nil {
		return err
	}

	if doc.corrupt != nil && s.opts.KeepCorrupt {
		backup := s.path + ".corrupt"
		if err := writeFile(backup, doc.corrupt, s.opts.FileMode); err != nil {
			return fmt.Errorf("%w: backup corrupt file: %w", serr.ErrStorage, err)
		}
		s.opts.Log.Warn("corrupt store preserved", zap.String("backup", backup))
	}

	b, err := encodeArray(next, doc.foreign)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", serr.ErrStorage, err)
	}
	if err := writeFile(s.path, b, s.opts.FileMode); err != nil {
		return fmt.Errorf("%w: write %s: %w", serr.ErrStorage, s.path, err)
	}

	s.opts.Log.Debug("store written",
		zap.String("path", s.path),
		zap.Int("records", len(next)),
		zap.Int("kept_as_is", len(doc.foreign)),
	)
	return nil
}

// document — содержимое файла на момент чтения.
type document[T any] struct {
	records []T
	// foreign — элементы, не подошедшие под T; при записи сохраняются как есть.
	foreign []foreignEntry
	// corrupt — исходные байты файла, который не разобрался как JSON-массив.
	corrupt []byte
}

// read читает и разбирает файл. Файл, который не является JSON-массивом,
// читается как пустой, его байты возвращаются в corrupt.
func (s *JSONFile[T]) read() (document[T], error) {
	b, err := readFile(s.path)
	if err != nil {
		return document[T]{}, fmt.Errorf("%w: read %s: %w", serr.ErrStorage, s.path, err)
	}

	records, foreign, err := decodeArray[T](b)
	if err != nil {
		// та же политика восстановления, что и для отсутствующего файла
		s.opts.Log.Warn("corrupt store treated as empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return document[T]{records: []T{}, corrupt: b}, nil
	}

	for _, f := range foreign {
		s.opts.Log.Warn("record does not match schema, kept as is",
			zap.String("path", s.path),
			zap.Int("index", f.index),
			zap.Error(f.err),
		)
	}
	return document[T]{records: records, foreign: foreign}, nil
}

// lock берёт блокировку на <path>.lock и возвращает функцию освобождения.
//
// Для разделяемой блокировки недоступный файл блокировки даёт errLockUnavailable,
// остальные ошибки оборачиваются в serr.ErrStorage.
func (s *JSONFile[T]) lock(ctx context.Context, exclusive bool) (func(), error) {
	if s.opts.LockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.LockTimeout)
		defer cancel()
	}

	fl := flock.New(s.path + ".lock")

	var (
		ok  bool
		err error
	)
	if exclusive {
		ok, err = fl.TryLockContext(ctx, s.opts.LockRetry)
	} else {
		ok, err = fl.TryRLockContext(ctx, s.opts.LockRetry)
	}
	if err != nil {
		if !exclusive && (errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EROFS)) {
			return nil, fmt.Errorf("%w: %w", errLockUnavailable, err)
		}
		return nil, fmt.Errorf("%w: lock %s: %w", serr.ErrStorage, s.path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: lock %s: not acquired", serr.ErrStorage, s.path)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.opts.Log.Warn("unlock failed", zap.String("path", s.path), zap.Error(err))
		}
	}, nil
}
