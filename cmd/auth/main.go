// Package main содержит точку входа обработчика учётных записей medkeeper.
//
// Пакет передаёт информацию о версии и дате сборки в CLI-слой
// и завершает процесс с кодом, который вернул обработчик:
// 0 — success=true, 1 — любой отказ.
package main

import (
	"os"

	"github.com/IvanChernomyrdin/medkeeper/internal/cli"
)

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	// По умолчанию используется значение "dev".
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	// По умолчанию используется значение "unknown".
	buildDate = "unknown"
)

func main() {
	os.Exit(cli.ExecuteAuth(buildVersion, buildDate))
}
