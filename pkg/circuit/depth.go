package circuit

// Depth returns the length of the circuit's critical path.
//
// Depth schedules every instruction at one past the highest level already
// occupied on any wire it touches, then reports the highest level reached.
// Measurements occupy both their qubit wire and their classical wire, so a
// later instruction conditioned on the same classical bit cannot overlap
// them. Barriers are directives: they contribute no level and do not
// synchronize wires.
//
// An empty circuit has depth 0.
func (c *Circuit) Depth() int {
	qubitLevel := make([]int, c.Qubits)
	clbitLevel := make([]int, c.Clbits)

	depth := 0
	for _, op := range c.Ops {
		if op.Gate == "barrier" {
			continue
		}
		level := scheduleOp(op, qubitLevel, clbitLevel)
		if level > depth {
			depth = level
		}
	}
	return depth
}

// Size returns the number of instructions excluding directives (barriers).
func (c *Circuit) Size() int {
	n := 0
	for _, op := range c.Ops {
		if op.Gate != "barrier" {
			n++
		}
	}
	return n
}

// OpsByType counts instructions per gate name. Unlike Depth and Size,
// barriers are included.
func (c *Circuit) OpsByType() map[string]int {
	counts := make(map[string]int)
	for _, op := range c.Ops {
		counts[op.Gate]++
	}
	return counts
}

// Measurements returns the number of measure instructions.
func (c *Circuit) Measurements() int {
	n := 0
	for _, op := range c.Ops {
		if op.Gate == "measure" {
			n++
		}
	}
	return n
}

// Moments groups instruction indices into time slices.
//
// Each instruction lands in the earliest moment after every moment already
// occupied on the wires it touches, mirroring the longest-path layering used
// for diagram rows. Unlike Depth, barriers take part: a barrier occupies a
// moment of its own across its qubits, which keeps diagram columns aligned
// the way the circuit author wrote them.
//
// The returned slices index into c.Ops in order. An empty circuit yields no
// moments.
func (c *Circuit) Moments() [][]int {
	qubitLevel := make([]int, c.Qubits)
	clbitLevel := make([]int, c.Clbits)

	var moments [][]int
	for i, op := range c.Ops {
		level := scheduleOp(op, qubitLevel, clbitLevel)
		for len(moments) < level {
			moments = append(moments, nil)
		}
		moments[level-1] = append(moments[level-1], i)
	}
	return moments
}

// scheduleOp places op one past the highest occupied level on its wires and
// returns the level it landed on. Wire levels are updated in place.
func scheduleOp(op Op, qubitLevel, clbitLevel []int) int {
	level := 0
	for _, q := range op.Qubits {
		if qubitLevel[q] > level {
			level = qubitLevel[q]
		}
	}
	if op.Gate == "measure" {
		for _, cl := range op.TargetClbits() {
			if clbitLevel[cl] > level {
				level = clbitLevel[cl]
			}
		}
	}

	level++
	for _, q := range op.Qubits {
		qubitLevel[q] = level
	}
	if op.Gate == "measure" {
		for _, cl := range op.TargetClbits() {
			clbitLevel[cl] = level
		}
	}
	return level
}
