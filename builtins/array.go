package builtins

import (
	"fmt"
	"strings"

	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/value"
)

// ArrayMethods lists the receiver-less names a UFCS-style free call may
// also resolve to on an array first argument (spec.md §4.4 step 4).
var ArrayMethods = map[string]bool{
	"join": true,
}

// CallArray dispatches method on receiver a with args.
func CallArray(a value.Array, method string, args []value.Value) (value.Value, error) {
	switch method {
	case "join":
		return arrayJoin(a, args)
	default:
		return nil, fmt.Errorf(errors.MsgUnknownArrayMethod, method)
	}
}

// arrayJoin joins only the string elements of a with delim, silently
// dropping non-string elements (spec.md §4.2: a design choice inherited
// from the source; callers that want full rendering must pre-stringify).
func arrayJoin(a value.Array, args []value.Value) (value.Value, error) {
	if err := requireArgs("join", args, 1); err != nil {
		return nil, err
	}
	delim := argString(args[0])
	var parts []string
	for _, elem := range a {
		if s, ok := elem.(value.String); ok {
			parts = append(parts, string(s))
		}
	}
	return value.String(strings.Join(parts, delim)), nil
}
