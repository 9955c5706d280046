package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mxovd/pips-solver/internal/board"
)

func TestParseRule(t *testing.T) {
	for _, tt := range []struct {
		token string
		want  board.Rule
	}{
		{"=", board.Rule{Kind: board.RuleAllEqual}},
		{"x", board.Rule{Kind: board.RuleUnconstrained}},
		{"0", board.Rule{Kind: board.RuleSumEquals, Target: 0}},
		{"10", board.Rule{Kind: board.RuleSumEquals, Target: 10}},
		{">3", board.Rule{Kind: board.RuleSumGreaterThan, Target: 3}},
		{"<7", board.Rule{Kind: board.RuleSumLessThan, Target: 7}},
		{">0", board.Rule{Kind: board.RuleSumGreaterThan, Target: 0}},
	} {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, board.ParseRule(tt.token))
		})
	}
}

func TestParseRuleUnrecognized(t *testing.T) {
	// Anything outside the grammar loads as an unrecognized rule rather than
	// failing, including malformed numeric suffixes and negative targets.
	for _, token := range []string{
		"", "??", "==", "X", ">", "<", ">abc", "<1.5", ">-2", "-3", "3x", "sum",
	} {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, board.RuleUnrecognized, board.ParseRule(token).Kind, "token %q", token)
		})
	}
}

func TestRuleString(t *testing.T) {
	// Tokens inside the grammar round-trip through ParseRule and String.
	for _, token := range []string{"=", "x", "5", ">3", "<12"} {
		assert.Equal(t, token, board.ParseRule(token).String())
	}
	assert.Equal(t, "?", board.ParseRule("junk").String())
}

func TestRuleKindString(t *testing.T) {
	assert.Equal(t, "sum", board.RuleSumEquals.String())
	assert.Equal(t, "unconstrained", board.RuleUnconstrained.String())
	assert.Equal(t, "unrecognized", board.ParseRule(">oops").Kind.String())
}
