//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the geodesic binary into bin/.
func (Build) Generator() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/geodesic", "."), withEnv("CGO_ENABLED=0"), withStream()); err != nil {
		return err
	}
	return nil
}

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
