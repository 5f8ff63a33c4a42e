// Package algorithm provides ready-made circuit templates for well-known
// quantum algorithms. Templates are small, fixed-size demonstration circuits
// meant for analysis and teaching rather than scalable implementations.
package algorithm

import (
	"sort"
	"strings"

	"github.com/matzehuels/qscope/pkg/circuit"
	"github.com/matzehuels/qscope/pkg/errors"
)

// Template describes a named algorithm circuit.
type Template struct {
	Name        string // canonical lowercase identifier
	DisplayName string
	Category    string
	Description string
	Tags        []string

	build func() (*circuit.Circuit, error)
}

// Build constructs a fresh circuit for the template. Every call returns a
// new independent circuit.
func (t Template) Build() (*circuit.Circuit, error) {
	return t.build()
}

// Catalog categories, in display order.
var categoryOrder = []string{
	"Search",
	"Fourier & Phase",
	"Communication",
	"Decision",
	"Error Correction",
	"Variational",
}

var catalog = map[string]Template{
	"grover": {
		Name:        "grover",
		DisplayName: "Grover Search",
		Category:    "Search",
		Description: "Two-qubit Grover search demonstration with oracle and diffusion steps.",
		Tags:        []string{"education", "analysis"},
		build:       buildGrover,
	},
	"qft": {
		Name:        "qft",
		DisplayName: "Quantum Fourier Transform",
		Category:    "Fourier & Phase",
		Description: "Three-qubit QFT highlighting controlled-phase rotations.",
		Tags:        []string{"analysis", "template"},
		build:       buildQFT,
	},
	"teleport": {
		Name:        "teleport",
		DisplayName: "Quantum Teleportation",
		Category:    "Communication",
		Description: "Standard teleportation protocol with measurement and classical feed-forward.",
		Tags:        []string{"education", "template"},
		build:       buildTeleport,
	},
	"bb84": {
		Name:        "bb84",
		DisplayName: "BB84 Key Distribution",
		Category:    "Communication",
		Description: "Illustrative circuit for sharing a BB84 key element.",
		Tags:        []string{"security", "education"},
		build:       buildBB84,
	},
	"deutsch_jozsa": {
		Name:        "deutsch_jozsa",
		DisplayName: "Deutsch-Jozsa",
		Category:    "Decision",
		Description: "Two-qubit example contrasting constant vs balanced oracles.",
		Tags:        []string{"education"},
		build:       buildDeutschJozsa,
	},
	"bitflip_code": {
		Name:        "bitflip_code",
		DisplayName: "Three-Qubit Bit Flip Code",
		Category:    "Error Correction",
		Description: "Basic quantum error-correcting code illustrating redundancy.",
		Tags:        []string{"analysis", "template"},
		build:       buildBitflipCode,
	},
	"vqe_ansatz": {
		Name:        "vqe_ansatz",
		DisplayName: "VQE Ansatz",
		Category:    "Variational",
		Description: "Minimal two-qubit parametrized circuit suitable for VQE demonstrations.",
		Tags:        []string{"analysis", "optimization"},
		build:       buildVQEAnsatz,
	},
}

// Get returns the template for name. Lookup is case-insensitive.
func Get(name string) (Template, error) {
	t, ok := catalog[strings.ToLower(name)]
	if !ok {
		return Template{}, errors.New(errors.ErrCodeAlgorithmNotFound,
			"unknown algorithm %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Build constructs a fresh circuit for the named template.
func Build(name string) (*circuit.Circuit, error) {
	t, err := Get(name)
	if err != nil {
		return nil, err
	}
	return t.Build()
}

// Names returns all template identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories groups the templates by category. The outer slice follows the
// catalog's display order; entries within a category are sorted by name.
func Categories() []CategoryGroup {
	byCategory := make(map[string][]Template)
	for _, t := range catalog {
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}

	groups := make([]CategoryGroup, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		templates := byCategory[category]
		if len(templates) == 0 {
			continue
		}
		sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
		groups = append(groups, CategoryGroup{Category: category, Templates: templates})
	}
	return groups
}

// CategoryGroup is one category of the catalog with its templates.
type CategoryGroup struct {
	Category  string
	Templates []Template
}
