package cli

import (
	"golang.org/x/term"
)

// для тестов
var (
	IsTerminal = term.IsTerminal
)
