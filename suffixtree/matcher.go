/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package suffixtree

import (
	"regexp"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/jumboframes/gstree/log"
	"github.com/pkg/errors"
)

// Matcher decides which suffixes SearchMatchingSuffix keeps.
type Matcher interface {
	Match(suffix string) bool
}

type MatcherFunc func(suffix string) bool

func (f MatcherFunc) Match(suffix string) bool {
	return f(suffix)
}

type regexpMatcher struct {
	re *regexp.Regexp
}

// RegexpMatcher accepts suffixes matching pattern as a whole, not a
// substring of them.
func RegexpMatcher(pattern string) (Matcher, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, errors.Wrapf(err, "compile pattern %q", pattern)
	}
	return &regexpMatcher{re: re}, nil
}

func (m *regexpMatcher) Match(suffix string) bool {
	return m.re.MatchString(suffix)
}

type exprMatcher struct {
	program *vm.Program
}

// ExprMatcher evaluates a boolean expr-lang expression over the variable
// suffix, e.g. `len(suffix) > 2 && suffix startsWith "ab"`.
func ExprMatcher(expression string) (Matcher, error) {
	program, err := expr.Compile(expression, expr.Env(exprEnv("")), expr.AsBool())
	if err != nil {
		return nil, errors.Wrapf(err, "compile expression %q", expression)
	}
	return &exprMatcher{program: program}, nil
}

func (m *exprMatcher) Match(suffix string) bool {
	out, err := expr.Run(m.program, exprEnv(suffix))
	if err != nil {
		log.Debugf("expression failed on suffix %q: %s", suffix, err)
		return false
	}
	matched, _ := out.(bool)
	return matched
}

func exprEnv(suffix string) map[string]interface{} {
	return map[string]interface{}{
		"suffix": suffix,
	}
}
