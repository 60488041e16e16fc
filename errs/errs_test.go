/*
File    : lax/errs/errs_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package errs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lax/token"
)

func TestScanError_Format(t *testing.T) {
	err := ScanError{Line: 4, Message: "Unterminated string."}
	assert.Equal(t, "[line 4] Error: Unterminated string.", err.Error())
}

func TestParseError_Format_AtEnd(t *testing.T) {
	err := ParseError{Token: token.New(token.Eof, "", 7), Message: "Expect expression."}
	assert.Equal(t, "[line 7] Error at end: Expect expression.", err.Error())
}

func TestParseError_Format_AtToken(t *testing.T) {
	err := ParseError{Token: token.New(token.Semicolon, ";", 2), Message: "Expect expression."}
	assert.Equal(t, "[line 2] Error at ';': Expect expression.", err.Error())
}

func TestRuntimeError_Format(t *testing.T) {
	err := RuntimeError{Token: token.New(token.Minus, "-", 9), Message: "Operand must be a number."}
	assert.Equal(t, "[line 9] Operand must be a number.", err.Error())
}

func TestStatus_ReportSetsCompileErrorFlag(t *testing.T) {
	var buf strings.Builder
	status := NewStatus(&buf)

	status.ReportScan(ScanError{Line: 1, Message: "Unexpected character."})
	assert.True(t, status.HadCompileError)
	assert.False(t, status.HadRuntimeError)
	assert.Contains(t, buf.String(), "Unexpected character.")
}

func TestStatus_ReportSetsRuntimeErrorFlag(t *testing.T) {
	var buf strings.Builder
	status := NewStatus(&buf)

	status.ReportRuntime(RuntimeError{Token: token.New(token.Plus, "+", 1), Message: "boom"})
	assert.False(t, status.HadCompileError)
	assert.True(t, status.HadRuntimeError)
}

func TestStatus_ResetClearsBothFlags(t *testing.T) {
	var buf strings.Builder
	status := NewStatus(&buf)

	status.ReportScan(ScanError{Line: 1, Message: "x"})
	status.ReportRuntime(RuntimeError{Token: token.New(token.Plus, "+", 1), Message: "y"})
	status.Reset()

	assert.False(t, status.HadCompileError)
	assert.False(t, status.HadRuntimeError)
}
