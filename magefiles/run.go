//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Writes the default icosphere edge list to assets/icosphere.lines.
func (Run) Icosphere() error {
	mg.Deps(Build.Generator)
	if err := os.MkdirAll("assets", 0o755); err != nil {
		return err
	}
	fmt.Println("Generating icosphere...")
	if _, err := executeCmd("bin/geodesic", withArgs("-out", "assets/icosphere.lines"), withStream()); err != nil {
		return err
	}
	return nil
}

// Writes an indexed icosphere mesh to assets/icosphere.obj.
func (Run) Mesh() error {
	mg.Deps(Build.Generator)
	if err := os.MkdirAll("assets", 0o755); err != nil {
		return err
	}
	if _, err := executeCmd("bin/geodesic", withArgs("-format", "obj", "-subdivisions", "3", "-out", "assets/icosphere.obj"), withStream()); err != nil {
		return err
	}
	return nil
}
