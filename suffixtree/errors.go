/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package suffixtree

import (
	"fmt"

	"github.com/jumboframes/gstree/log"
)

// InvariantError reports a broken structural invariant of the tree. It is
// raised with panic and is never returned to callers.
type InvariantError struct {
	Op     string
	Detail string
}

func (err *InvariantError) Error() string {
	return "suffixtree: invariant violated in " + err.Op + ": " + err.Detail
}

func violate(op string, format string, v ...interface{}) {
	err := &InvariantError{
		Op:     op,
		Detail: fmt.Sprintf(format, v...),
	}
	log.Errorf("%s", err)
	panic(err)
}
