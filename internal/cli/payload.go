package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/medkeeper/internal/shared/errors"
)

// stdinPayload — значение аргумента, при котором JSON читается из stdin.
const stdinPayload = "-"

// maxPayloadSize ограничивает размер запроса из stdin.
const maxPayloadSize = 1 << 20

// readPayload возвращает сырой JSON запроса.
//
// Обычно это сам аргумент команды. Аргумент "-" означает чтение из stdin;
// интерактивный терминал в этом случае не принимается, чтобы процесс не повис
// в ожидании ввода.
func readPayload(cmd *cobra.Command, arg string) ([]byte, error) {
	if arg != stdinPayload {
		return []byte(arg), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("%w: stdin is a terminal; pipe the JSON payload", serr.ErrInvalidInput)
	}

	b, err := io.ReadAll(io.LimitReader(in, maxPayloadSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read payload from stdin: %w", serr.ErrInvalidInput, err)
	}
	if len(b) > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", serr.ErrInvalidInput, maxPayloadSize)
	}
	return bytes.TrimSpace(b), nil
}

// decodePayload разбирает JSON-объект запроса в dst.
//
// Лишние ключи игнорируются: обязательность ключей проверяет сервисный слой.
func decodePayload(cmd *cobra.Command, arg string, dst any) error {
	raw, err := readPayload(cmd, arg)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", serr.ErrBadJSON, err)
	}
	return nil
}
