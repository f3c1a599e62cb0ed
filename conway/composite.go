package conway

import (
	"fmt"
	"strings"

	"github.com/gogpu/halfedge"
)

// Operator is a Conway operator: it reads a seed and returns a new mesh.
type Operator func(halfedge.Topology) (*halfedge.Mesh, error)

// compose returns the operator applying ops right to left, like the
// notation does.
func compose(ops ...Operator) Operator {
	return func(m halfedge.Topology) (*halfedge.Mesh, error) {
		cur := m
		var out *halfedge.Mesh
		for i := len(ops) - 1; i >= 0; i-- {
			var err error
			out, err = ops[i](cur)
			if err != nil {
				return nil, err
			}
			cur = out
		}
		return out, nil
	}
}

// Ambo is dual(join(M)): one vertex per edge. (V, E, F) -> (E, 2E, V+F).
func Ambo(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Dual, Join)(m)
}

// Needle is kis(dual(M)). (V, E, F) -> (V+F, 3E, 2E).
func Needle(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Kis, Dual)(m)
}

// Zip is dual(kis(M)). (V, E, F) -> (2E, 3E, V+F).
func Zip(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Dual, Kis)(m)
}

// Truncate is dual(kis(dual(M))): every vertex is cut off.
// (V, E, F) -> (2E, 3E, V+F).
func Truncate(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Dual, Kis, Dual)(m)
}

// Ortho is join(join(M)). (V, E, F) -> (V+F+E, 4E, 2E).
func Ortho(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Join, Join)(m)
}

// Expand is ambo(ambo(M)). (V, E, F) -> (2E, 4E, V+F+E).
func Expand(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Ambo, Ambo)(m)
}

// Snub is dual(gyro(dual(M))). (V, E, F) -> (2E, 5E, V+F+2E).
func Snub(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Dual, Gyro, Dual)(m)
}

// Meta is kis(join(M)). (V, E, F) -> (V+F+E, 6E, 4E).
func Meta(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Kis, Join)(m)
}

// Bevel is truncate(ambo(M)). (V, E, F) -> (4E, 6E, V+F+E).
func Bevel(m halfedge.Topology) (*halfedge.Mesh, error) {
	return compose(Truncate, Ambo)(m)
}

var operators = []struct {
	name   string
	symbol byte
	op     Operator
}{
	{"dual", 'd', Dual},
	{"join", 'j', Join},
	{"ambo", 'a', Ambo},
	{"kis", 'k', Kis},
	{"needle", 'n', Needle},
	{"zip", 'z', Zip},
	{"truncate", 't', Truncate},
	{"ortho", 'o', Ortho},
	{"expand", 'e', Expand},
	{"gyro", 'g', Gyro},
	{"snub", 's', Snub},
	{"meta", 'm', Meta},
	{"bevel", 'b', Bevel},
}

// Names returns the operator names in notation order.
func Names() []string {
	names := make([]string, len(operators))
	for i, o := range operators {
		names[i] = o.name
	}
	return names
}

// Lookup finds an operator by name ("truncate") or notation letter ("t").
func Lookup(name string) (Operator, error) {
	for _, o := range operators {
		if o.name == name || (len(name) == 1 && name[0] == o.symbol) {
			return o.op, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}

// Apply evaluates Conway notation against m. Operators apply right to
// left, so "dk" is dual(kis(m)). Notation is either a run of letters or a
// comma separated list of names such as "dual,kis".
func Apply(m halfedge.Topology, notation string) (*halfedge.Mesh, error) {
	var names []string
	if strings.Contains(notation, ",") {
		for name := range strings.SplitSeq(notation, ",") {
			names = append(names, strings.TrimSpace(name))
		}
	} else {
		for i := range notation {
			names = append(names, notation[i:i+1])
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty notation", ErrUnknownOperator)
	}
	ops := make([]Operator, len(names))
	for i, name := range names {
		op, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return compose(ops...)(m)
}
