package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/medkeeper/internal/models"
)

// result — то, что увидел вызывающий процесс: код завершения и конверт.
type result struct {
	Code int
	Raw  string
	Body map[string]any
}

func (r result) success() bool {
	v, _ := r.Body["success"].(bool)
	return v
}

func (r result) message() string {
	v, _ := r.Body["message"].(string)
	return v
}

func (r result) kind() string {
	v, _ := r.Body["error"].(string)
	return v
}

func (r result) user() map[string]any {
	v, _ := r.Body["user"].(map[string]any)
	return v
}

// isolate отвязывает тест от окружения разработчика: логи во временный каталог,
// без конфига из MEDKEEPER_CONFIG.
func isolate(t *testing.T) (dataDir, logDir string) {
	t.Helper()

	logDir = t.TempDir()
	t.Setenv("MEDKEEPER_LOG_DIR", logDir)
	t.Setenv("MEDKEEPER_CONFIG", "")
	t.Setenv("MEDKEEPER_DATA_DIR", "")

	return filepath.Join(t.TempDir(), "data"), logDir
}

func execute(t *testing.T, root *cobra.Command, stdin io.Reader, args ...string) result {
	t.Helper()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	code := cliRun(root)

	res := result{Code: code, Raw: out.String()}
	if out.Len() > 0 {
		require.NoError(t, json.Unmarshal(out.Bytes(), &res.Body), "stdout must be a JSON envelope: %q", out.String())
	}
	return res
}

func readUsers(t *testing.T, dataDir string) []models.User {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(dataDir, "userdata.json"))
	require.NoError(t, err)

	var users []models.User
	require.NoError(t, json.Unmarshal(b, &users))
	return users
}

func readReminders(t *testing.T, dataDir string) []models.Reminder {
	t.Helper()

	b, err := os.ReadFile(filepath.Join(dataDir, "reminder.json"))
	require.NoError(t, err)

	var reminders []models.Reminder
	require.NoError(t, json.Unmarshal(b, &reminders))
	return reminders
}

var ctx = context.Background()
