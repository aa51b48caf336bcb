/*
 * Basalt - A smart contract language for the Ethereum Virtual Machine
 *
 * Copyright Basalt Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sema

import (
	"github.com/basalt-lang/basalt/ast"
	"github.com/basalt-lang/basalt/common"
	"github.com/basalt-lang/basalt/errors"
)

// Compilation drives the analysis of a set of source units
// as one compilation unit.
//
// Analysis runs in two phases:
// first, all `global` directives of all units are collected,
// then the units are checked.
// The phase barrier guarantees that a member call in one unit
// can resolve through a `global` directive in another,
// regardless of unit order.
type Compilation struct {
	Config            *Config
	globalAttachments *GlobalAttachments
	units             []*compilationUnit
	checkers          map[common.Location]*Checker
}

type compilationUnit struct {
	program  *ast.Program
	location common.Location
}

func NewCompilation(config *Config) *Compilation {
	if config == nil {
		config = &Config{}
	}
	return &Compilation{
		Config:            config,
		globalAttachments: NewGlobalAttachments(),
		checkers:          map[common.Location]*Checker{},
	}
}

// AddUnit registers a source unit.
// Units must be added before Check is called.
func (c *Compilation) AddUnit(program *ast.Program, location common.Location) error {
	if c.globalAttachments.IsSealed() {
		return errors.NewDefaultUserError(
			"cannot add unit %s: checking already started",
			location,
		)
	}

	c.units = append(
		c.units,
		&compilationUnit{
			program:  program,
			location: location,
		},
	)
	return nil
}

// Check analyzes all units. The returned checkers are keyed by location.
// The error aggregates the per-unit check errors, if any.
func (c *Compilation) Check() (map[common.Location]*Checker, error) {

	// Phase one: declare every unit's file-level type names,
	// resolve imports, resolve declaration details,
	// and collect all global directives.
	// Names are declared for all units before any import is resolved,
	// and imports are resolved before any declaration detail is,
	// so that declarations may refer to imported types.

	for _, unit := range c.units {
		checker, err := NewChecker(
			unit.program,
			unit.location,
			c.globalAttachments,
			c.Config,
		)
		if err != nil {
			return nil, err
		}
		c.checkers[unit.location] = checker

		checker.declareTypeNames()
	}

	for _, unit := range c.units {
		checker := c.checkers[unit.location]

		for _, importDeclaration := range unit.program.ImportDeclarations() {
			imported := c.checkers[importDeclaration.ImportedLocation]
			if imported == nil {
				checker.report(
					&UnresolvedImportError{
						ImportedLocation: importDeclaration.ImportedLocation,
						Range:            ast.NewRangeFromPositioned(importDeclaration),
					},
				)
				continue
			}
			checker.importTypesFrom(imported)
		}

		checker.declareDeclarations()
	}

	for _, unit := range c.units {
		c.checkers[unit.location].CollectGlobalDirectives()
	}

	// No further global directives may be added past this point

	c.globalAttachments.Seal()

	// Phase two: check every unit

	var checkerErrors []error

	for _, unit := range c.units {
		err := c.checkers[unit.location].Check()
		if err != nil {
			checkerErrors = append(checkerErrors, err)
		}
	}

	if len(checkerErrors) > 0 {
		return c.checkers, CompilationError{
			Errors: checkerErrors,
		}
	}

	return c.checkers, nil
}

// Checker returns the checker of the unit at the given location,
// or nil if no unit was added for it
func (c *Compilation) Checker(location common.Location) *Checker {
	return c.checkers[location]
}

// GlobalAttachmentCount returns the number of binding entries
// registered by `global` directives across all units
func (c *Compilation) GlobalAttachmentCount() int {
	return c.globalAttachments.Count()
}
