// Package cli реализует командный интерфейс обработчиков medkeeper.
//
// Пакет отвечает за:
//   - определение root-команд auth и reminder и их подкоманд;
//   - чтение JSON-запроса из аргумента или stdin;
//   - сборку зависимостей (config → store → repository → service);
//   - печать конверта ответа в stdout и выбор кода завершения.
//
// Точки входа пакета — функции ExecuteAuth и ExecuteReminder.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/medkeeper/internal/config"
	"github.com/IvanChernomyrdin/medkeeper/internal/models"
	"github.com/IvanChernomyrdin/medkeeper/internal/repository"
	"github.com/IvanChernomyrdin/medkeeper/internal/service"
	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/medkeeper/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/medkeeper/internal/shared/models"
	"github.com/IvanChernomyrdin/medkeeper/internal/store"
)

// errReported означает, что конверт с success=false уже напечатан
// и процесс должен завершиться с кодом 1.
var errReported = errors.New("failure reported")

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
// Зависимости поднимаются лениво, в момент выполнения операции, поэтому
// команда version не трогает ни конфиг, ни файлы.
type App struct {
	// Handler — имя обработчика (auth|reminder), используется как имя лог-файла.
	Handler string

	// ConfigPath — значение флага --config.
	ConfigPath string
	// DataDir — значение флага --data-dir, перекрывает storage.data_dir.
	DataDir string

	// Config — загруженный конфиг. Заполняется в init.
	Config *config.Config
	// Log — файловый логгер обработчика. Заполняется в init.
	Log *logger.Logger
	// Services — сервисы поверх файловых хранилищ. Заполняется в init.
	Services *service.Services
}

// newApp создаёт состояние приложения и вешает общие флаги на root-команду.
func newApp(handler string, root *cobra.Command) *App {
	app := &App{Handler: handler}

	root.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "path to yaml config (env MEDKEEPER_CONFIG)")
	root.PersistentFlags().StringVar(&app.DataDir, "data-dir", "", "directory with userdata.json and reminder.json")

	return app
}

// init поднимает конфиг, логгер и сервисы. Повторный вызов ничего не делает.
//
// Ошибка конфига прерывает операцию. Если не удалось открыть лог-файл,
// операция выполняется без логов, а причина пишется в errOut.
func (a *App) init(errOut io.Writer) error {
	if a.Services != nil {
		return nil
	}

	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(config.ResolvePath(a.ConfigPath))
	if err != nil {
		return err
	}
	if a.DataDir != "" {
		cfg.Storage.DataDir = a.DataDir
	}
	a.Config = cfg

	if a.Log == nil {
		log, err := logger.New(logger.Options{
			Dir:        cfg.Log.Dir,
			File:       a.Handler + ".log",
			Level:      cfg.Log.Level,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		})
		if err != nil {
			fmt.Fprintf(errOut, "logging disabled: %v\n", err)
			log = logger.Nop()
		}
		a.Log = log
	}

	opts := store.Options{
		DirMode:     os.FileMode(cfg.Storage.DirMode),
		FileMode:    os.FileMode(cfg.Storage.FileMode),
		LockTimeout: cfg.Storage.LockTimeout,
		LockRetry:   cfg.Storage.LockRetry,
		KeepCorrupt: cfg.Storage.KeepCorrupt != nil && *cfg.Storage.KeepCorrupt,
		Log:         a.Log,
	}

	a.Services = service.NewServices(service.Repositories{
		Users:     repository.NewUsersRepository(store.New[models.User](cfg.UsersPath(), opts)),
		Reminders: repository.NewRemindersRepository(store.New[models.Reminder](cfg.RemindersPath(), opts)),
	})

	return nil
}

// operation — одна операция обработчика. Возвращает успешный конверт либо ошибку.
type operation func(ctx context.Context, s *service.Services) (shared.Response, error)

// run выполняет операцию целиком: поднимает зависимости, вызывает op,
// печатает конверт и пишет строку в лог.
//
// Возвращает errReported, если в stdout ушёл ответ с success=false.
func (a *App) run(cmd *cobra.Command, action string, op operation) error {
	start := time.Now()

	if err := a.init(cmd.ErrOrStderr()); err != nil {
		return a.report(cmd, action, start, shared.Fail(serr.KindInternal, fmt.Sprintf("config: %v", err)))
	}
	defer a.Log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resp, err := op(ctx, a.Services)
	if err != nil {
		if serr.Kind(err) == serr.KindStorage || serr.Kind(err) == serr.KindInternal {
			a.Log.Error("operation failed",
				zap.String("handler", a.Handler),
				zap.String("action", action),
				zap.Error(err),
			)
		}
		resp = failure(err)
	}

	return a.report(cmd, action, start, resp)
}

// report печатает конверт и пишет лог операции.
func (a *App) report(cmd *cobra.Command, action string, start time.Time, resp shared.Response) error {
	if a.Log != nil {
		a.Log.LogOperation(a.Handler, action, resp.Success, resp.Error, float64(time.Since(start).Microseconds())/1000)
	}

	if err := resp.Write(cmd.OutOrStdout()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "write response:", err)
		return errReported
	}
	if !resp.Success {
		return errReported
	}
	return nil
}

// Run запускает root-команду и переводит результат в код завершения.
//
// 0 — success=true, 1 — любой отказ, включая ошибки разбора аргументов и флагов,
// для которых конверт печатается здесь же.
func Run(ctx context.Context, root *cobra.Command) int {
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	default:
		if werr := usageFailure().Write(root.OutOrStdout()); werr != nil {
			fmt.Fprintln(root.ErrOrStderr(), werr)
		}
		fmt.Fprintln(root.ErrOrStderr(), err)
		return 1
	}
}
