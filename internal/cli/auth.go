package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/medkeeper/internal/service"
	shared "github.com/IvanChernomyrdin/medkeeper/internal/shared/models"
)

// NewAuthRootCmd создаёт root-команду обработчика учётных записей.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// Неизвестное действие и вызов без аргументов тоже отвечают конвертом,
// а не текстом cobra.
func NewAuthRootCmd(buildVersion, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Регистрация и вход пользователей medkeeper",
		Long: `Обработчик учётных записей medkeeper.

Команды:
  signup   Регистрация нового пользователя
  login    Проверка email и пароля
  version  Версия и дата сборки

Примеры:

Регистрация:
  auth signup '{"name":"Ann","email":"ann@mail.com","phone":"+100","password":"secret"}'

Логин:
  auth login '{"email":"ann@mail.com","password":"secret"}'

Запрос из stdin:
  echo '{"email":"ann@mail.com","password":"secret"}' | auth login -
`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	app := newApp("auth", cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return app.report(cmd, "", time.Now(), usageFailure())
		}
		return app.report(cmd, args[0], time.Now(), invalidAction())
	}

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(newHelpCmd(app, invalidAction))

	return cmd
}

// NewSignupCmd создаёт команду регистрации пользователя.
//
// Запрос должен содержать ключи name, email, phone и password. Пароль сохраняется
// как SHA-256 дайджест, в ответ пользователь возвращается без пароля.
//
// Пример использования:
//
//	auth signup '{"name":"Ann","email":"ann@mail.com","phone":"+100","password":"secret"}'
func NewSignupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <json>",
		Short: "Регистрация нового пользователя",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, "signup", func(ctx context.Context, s *service.Services) (shared.Response, error) {
				var in service.RegisterInput
				if err := decodePayload(cmd, args[0], &in); err != nil {
					return shared.Response{}, err
				}

				user, err := s.Auth.Register(ctx, in)
				if err != nil {
					return shared.Response{}, err
				}

				resp := shared.OK(MsgRegistered)
				resp.User = user
				return resp, nil
			})
		},
	}
}

// NewLoginCmd создаёт команду входа пользователя.
//
// Отсутствующий email и неверный пароль дают разные ответы:
// "User not found" (not_found) и "Invalid password" (invalid_credentials).
//
// Пример использования:
//
//	auth login '{"email":"ann@mail.com","password":"secret"}'
func NewLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <json>",
		Short: "Вход по email и паролю",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, "login", func(ctx context.Context, s *service.Services) (shared.Response, error) {
				var in service.LoginInput
				if err := decodePayload(cmd, args[0], &in); err != nil {
					return shared.Response{}, err
				}

				user, err := s.Auth.Login(ctx, in)
				if err != nil {
					return shared.Response{}, err
				}

				resp := shared.OK(MsgLoggedIn)
				resp.User = user
				return resp, nil
			})
		},
	}
}

// ExecuteAuth запускает обработчик учётных записей и возвращает код завершения.
func ExecuteAuth(buildVersion, buildDate string) int {
	return Run(context.Background(), NewAuthRootCmd(buildVersion, buildDate))
}
