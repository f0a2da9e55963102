package errors

import (
	"fmt"

	"github.com/nox-lang/lazylambda/internal/ast"
)

// SyntaxError is the structured error type raised by the lexer and parser,
// and built by NewEvalError for a recovered ast.Malformed.
// It always carries the phase-specific code from codes.go and the source
// position the failure was detected at, so the CLI can report both without
// re-deriving them from a bare error string.
type SyntaxError struct {
	Code    string
	Phase   string
	Pos     ast.Pos
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s at %s: %s", e.Code, e.Phase, e.Pos, e.Message)
}

// NewLexError builds a LEX### error at pos.
func NewLexError(code string, pos ast.Pos, message string) *SyntaxError {
	return &SyntaxError{Code: code, Phase: PhaseLexer, Pos: pos, Message: message}
}

// NewParseError builds a PAR### error at pos.
func NewParseError(code string, pos ast.Pos, message string) *SyntaxError {
	return &SyntaxError{Code: code, Phase: PhaseParser, Pos: pos, Message: message}
}

// NewEvalError builds an EVAL### error at pos. In practice this only ever
// wraps a recovered ast.Malformed panic (spec §7(b)): a bug in this program,
// never a consequence of user input.
func NewEvalError(code string, pos ast.Pos, message string) *SyntaxError {
	return &SyntaxError{Code: code, Phase: PhaseEval, Pos: pos, Message: message}
}
