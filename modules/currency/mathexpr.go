package currency

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
)

// ErrUnsafeExpression marks arithmetic input that was rejected before or
// during evaluation: characters outside the whitelist, malformed syntax,
// division by zero, or a non-finite result. Callers treat it like a parse
// miss, never as a fault.
var ErrUnsafeExpression = errors.New("unsafe or invalid expression")

var glyphReplacer = strings.NewReplacer(
	"х", "*", // Cyrillic kha
	"Х", "*",
	"×", "*",
	"÷", "/",
	":", "/",
	"^", "**",
)

var numberRunRegex = regexp.MustCompile(`[0-9]+(?:[0-9\s\x{00a0},.]*[0-9])?`)

// EvaluateExpression evaluates a restricted arithmetic expression: the four
// binary operators, exponentiation, unary minus and parentheses, with Cyrillic
// and typographic operator glyphs accepted. Every character must pass a strict
// whitelist before the string reaches the expression compiler; that whitelist,
// not the compiler's sandbox, is the injection defense. There is no
// environment: no names, no calls, no attribute access.
func EvaluateExpression(raw string) (float64, error) {
	s := glyphReplacer.Replace(raw)
	s = numberRunRegex.ReplaceAllStringFunc(s, NormalizeNumber)
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == ' ' {
			return -1
		}
		return r
	}, s)

	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrUnsafeExpression)
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')' || r == '.':
		default:
			return 0, fmt.Errorf("%w: character %q", ErrUnsafeExpression, r)
		}
	}

	program, err := expr.Compile(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnsafeExpression, err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnsafeExpression, err)
	}

	var result float64
	switch v := out.(type) {
	case float64:
		result = v
	case int:
		result = float64(v)
	case int64:
		result = float64(v)
	case uint64:
		result = float64(v)
	default:
		return 0, fmt.Errorf("%w: non-numeric result %T", ErrUnsafeExpression, out)
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("%w: non-finite result", ErrUnsafeExpression)
	}
	return result, nil
}
