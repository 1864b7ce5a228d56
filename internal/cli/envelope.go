package cli

import (
	"time"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/medkeeper/internal/shared/models"
)

// Тексты ответов обработчиков.
const (
	MsgRegistered      = "User registered successfully"
	MsgLoggedIn        = "Login successful"
	MsgReminderSaved   = "Reminder saved successfully"
	MsgEmailRegistered = "Email already registered"
	MsgUserNotFound    = "User not found"
	MsgInvalidPassword = "Invalid password"
	MsgInvalidAction   = "Invalid action"
	MsgInvalidArgs     = "Invalid arguments"
)

// failure переводит ошибку операции в конверт с success=false.
//
// Для доменных исходов текст фиксированный, для остальных — текст ошибки.
func failure(err error) shared.Response {
	kind := serr.Kind(err)

	switch kind {
	case serr.KindConflict:
		return shared.Fail(kind, MsgEmailRegistered)
	case serr.KindNotFound:
		return shared.Fail(kind, MsgUserNotFound)
	case serr.KindInvalidCredentials:
		return shared.Fail(kind, MsgInvalidPassword)
	default:
		return shared.Fail(kind, err.Error())
	}
}

func usageFailure() shared.Response {
	return shared.Fail(serr.KindInvalidInput, MsgInvalidArgs)
}

func invalidAction() shared.Response {
	return shared.Fail(serr.KindInvalidInput, MsgInvalidAction)
}

// newHelpCmd подменяет встроенную команду help cobra: в stdout уходит только конверт.
// Текст справки по-прежнему доступен через --help.
func newHelpCmd(app *App, resp func() shared.Response) *cobra.Command {
	return &cobra.Command{
		Use:    "help",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.report(cmd, "help", time.Now(), resp())
		},
	}
}
