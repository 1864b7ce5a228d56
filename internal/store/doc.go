// Package store реализует файловое хранилище записей medkeeper.
//
// Хранилище — один JSON-файл с массивом записей одного типа. Файл является
// единственным источником правды: каждая операция читает его целиком,
// меняет копию в памяти и записывает обратно.
//
// Гарантии:
//   - чтение идёт под разделяемой блокировкой, запись под эксклюзивной
//     (advisory lock на файле <path>.lock, gofrs/flock);
//   - запись атомарная: временный файл в том же каталоге, fsync, rename;
//   - отсутствующий или битый файл читается как пустой массив;
//   - каталог и файл создаются при первой записи.
package store
