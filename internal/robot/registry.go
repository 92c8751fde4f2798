package robot

import (
	"fmt"
	"sort"
	"strings"
)

var factories = map[string]func() Robot{
	"skullzz": func() Robot { return NewSkullzz() },
	"dummy":   func() Robot { return NewDummy() },
	"roamer":  func() Robot { return NewRoamer() },
}

// New builds a fresh robot of the named kind. Kind names are case-insensitive.
func New(kind string) (Robot, error) {
	f, ok := factories[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRobot, kind)
	}
	return f(), nil
}

func Kinds() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
