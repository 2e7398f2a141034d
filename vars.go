package pmpv

import (
	"bytes"
	"fmt"
	"sort"
)

// Vars holds the variables bound by assignments. It is not safe for
// concurrent use; give each session its own Vars.
type Vars struct {
	vars map[string]int64
}

func NewVars() *Vars {
	return &Vars{
		vars: make(map[string]int64),
	}
}

func (v *Vars) Get(name string) (int64, bool) {
	n, ok := v.vars[name]
	return n, ok
}

func (v *Vars) Set(name string, n int64) {
	v.vars[name] = n
}

func (v *Vars) Contains(name string) bool {
	_, ok := v.vars[name]
	return ok
}

// Clear removes every binding.
func (v *Vars) Clear() {
	v.vars = make(map[string]int64)
}

func (v *Vars) Len() int {
	return len(v.vars)
}

// Names returns the bound names in sorted order.
func (v *Vars) Names() []string {
	names := make([]string, 0, len(v.vars))
	for name := range v.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (v *Vars) String() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "{")
	for i, name := range v.Names() {
		if i > 0 {
			fmt.Fprint(&buf, ", ")
		}
		fmt.Fprintf(&buf, "%s: %d", name, v.vars[name])
	}
	fmt.Fprint(&buf, "}")
	return buf.String()
}
