package algorithm_test

import (
	"fmt"

	"github.com/matzehuels/qscope/pkg/algorithm"
)

func ExampleGet() {
	t, _ := algorithm.Get("teleport")
	c, _ := t.Build()

	fmt.Println(t.DisplayName)
	fmt.Println("Qubits:", c.Qubits)
	// Output:
	// Quantum Teleportation
	// Qubits: 3
}

func ExampleNames() {
	for _, name := range algorithm.Names() {
		fmt.Println(name)
	}
	// Output:
	// bb84
	// bitflip_code
	// deutsch_jozsa
	// grover
	// qft
	// teleport
	// vqe_ansatz
}
