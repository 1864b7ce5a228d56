package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/medkeeper/internal/service"
	shared "github.com/IvanChernomyrdin/medkeeper/internal/shared/models"
)

// NewReminderRootCmd создаёт root-команду обработчика напоминаний.
//
// Команда принимает один аргумент — JSON напоминания (или "-" для чтения из stdin)
// и дописывает запись в файл напоминаний.
func NewReminderRootCmd(buildVersion, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder <json>",
		Short: "Сохранение напоминаний о приёме лекарств",
		Long: `Обработчик напоминаний medkeeper.

Команды:
  submit   То же, что и вызов с одним JSON-аргументом
  version  Версия и дата сборки

Пример:
  reminder '{"medicine":"Aspirin","times":["2026-01-16T08:00:00.000Z"],"days":["Monday"],"numberOfDays":5}'

numberOfDays может быть null (еженедельный режим), но ключ обязателен.
`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	app := newApp("reminder", cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return app.report(cmd, "submit", time.Now(), usageFailure())
		}
		return submit(cmd, app, args[0])
	}

	cmd.AddCommand(NewSubmitCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(newHelpCmd(app, usageFailure))

	return cmd
}

// NewSubmitCmd создаёт явную форму сохранения напоминания.
//
// Пример использования:
//
//	reminder submit '{"medicine":"Aspirin","times":[],"days":[],"numberOfDays":null}'
func NewSubmitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <json>",
		Short: "Сохранить напоминание",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return submit(cmd, app, args[0])
		},
	}
}

func submit(cmd *cobra.Command, app *App, payload string) error {
	return app.run(cmd, "submit", func(ctx context.Context, s *service.Services) (shared.Response, error) {
		var in service.ReminderInput
		if err := decodePayload(cmd, payload, &in); err != nil {
			return shared.Response{}, err
		}

		if _, err := s.Reminders.Submit(ctx, in); err != nil {
			return shared.Response{}, err
		}
		return shared.OK(MsgReminderSaved), nil
	})
}

// ExecuteReminder запускает обработчик напоминаний и возвращает код завершения.
func ExecuteReminder(buildVersion, buildDate string) int {
	return Run(context.Background(), NewReminderRootCmd(buildVersion, buildDate))
}
