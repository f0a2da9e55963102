package errors

import (
	"testing"

	"github.com/nox-lang/lazylambda/internal/ast"
	"github.com/stretchr/testify/assert"
)

func TestSyntaxErrorMessage(t *testing.T) {
	pos := ast.Pos{File: "test.lam", Line: 2, Column: 5}
	err := NewParseError(PAR001, pos, "unexpected token ')'")

	assert.Equal(t, PAR001, err.Code)
	assert.Equal(t, PhaseParser, err.Phase)
	assert.Contains(t, err.Error(), "PAR001")
	assert.Contains(t, err.Error(), "test.lam:2:5")
	assert.Contains(t, err.Error(), "unexpected token ')'")
}

func TestNewLexError(t *testing.T) {
	pos := ast.Pos{File: "-", Line: 1, Column: 1}
	err := NewLexError(LEX001, pos, "illegal character '$'")

	assert.Equal(t, LEX001, err.Code)
	assert.Equal(t, PhaseLexer, err.Phase)
}

func TestNewEvalError(t *testing.T) {
	pos := ast.Pos{File: "-", Line: 1, Column: 1}
	err := NewEvalError(EVAL001, pos, "malformed AST: unknown expression variant reached evaluation")

	assert.Equal(t, EVAL001, err.Code)
	assert.Equal(t, PhaseEval, err.Phase)
	assert.Contains(t, err.Error(), "EVAL001")
}
