package board

import (
	"strconv"
	"strings"
)

// RuleKind enumerates the constraint families a region can carry.
type RuleKind int

const (
	// RuleUnconstrained places no requirement on the region ("x").
	RuleUnconstrained RuleKind = iota
	// RuleAllEqual requires every pip in the region to be identical ("=").
	RuleAllEqual
	// RuleSumEquals requires the region's pips to sum to Target exactly.
	RuleSumEquals
	// RuleSumGreaterThan requires the sum to strictly exceed Target.
	RuleSumGreaterThan
	// RuleSumLessThan requires the sum to stay strictly below Target.
	RuleSumLessThan
	// RuleUnrecognized marks a token the parser could not understand. It
	// evaluates exactly like RuleUnconstrained.
	RuleUnrecognized
)

func (k RuleKind) String() string {
	switch k {
	case RuleUnconstrained:
		return "unconstrained"
	case RuleAllEqual:
		return "all-equal"
	case RuleSumEquals:
		return "sum"
	case RuleSumGreaterThan:
		return "sum-greater-than"
	case RuleSumLessThan:
		return "sum-less-than"
	case RuleUnrecognized:
		return "unrecognized"
	}
	return "unknown"
}

// Rule is a region constraint: a kind plus, for the sum family, its target.
// Rules are immutable once parsed.
type Rule struct {
	Kind   RuleKind
	Target int
}

// ParseRule turns a rule token into a Rule. The grammar:
//
//	"="   all pips equal
//	"x"   unconstrained
//	">N"  sum strictly greater than N
//	"<N"  sum strictly less than N
//	"N"   sum equals N
//
// Any other token, including a malformed or negative numeric suffix such as
// ">abc", yields RuleUnrecognized, which evaluates as unconstrained. Parsing
// never fails: an unknown annotation in a puzzle file loads silently rather
// than rejecting the file.
func ParseRule(token string) Rule {
	switch token {
	case "=":
		return Rule{Kind: RuleAllEqual}
	case "x":
		return Rule{Kind: RuleUnconstrained}
	}
	if rest, ok := strings.CutPrefix(token, ">"); ok {
		if target, ok := parseTarget(rest); ok {
			return Rule{Kind: RuleSumGreaterThan, Target: target}
		}
		return Rule{Kind: RuleUnrecognized}
	}
	if rest, ok := strings.CutPrefix(token, "<"); ok {
		if target, ok := parseTarget(rest); ok {
			return Rule{Kind: RuleSumLessThan, Target: target}
		}
		return Rule{Kind: RuleUnrecognized}
	}
	if target, ok := parseTarget(token); ok {
		return Rule{Kind: RuleSumEquals, Target: target}
	}
	return Rule{Kind: RuleUnrecognized}
}

// parseTarget parses a non-negative decimal target value.
func parseTarget(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// String renders the rule in puzzle-file token form.
func (r Rule) String() string {
	switch r.Kind {
	case RuleAllEqual:
		return "="
	case RuleUnconstrained:
		return "x"
	case RuleSumEquals:
		return strconv.Itoa(r.Target)
	case RuleSumGreaterThan:
		return ">" + strconv.Itoa(r.Target)
	case RuleSumLessThan:
		return "<" + strconv.Itoa(r.Target)
	}
	return "?"
}
