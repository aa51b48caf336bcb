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

package ast

// Program is the top-level declaration list of a single source unit
type Program struct {
	Declarations []Declaration
}

func (p *Program) StartPosition() Position {
	if len(p.Declarations) == 0 {
		return Position{Line: 1}
	}
	return p.Declarations[0].StartPosition()
}

func (p *Program) EndPosition() Position {
	count := len(p.Declarations)
	if count == 0 {
		return Position{Line: 1}
	}
	return p.Declarations[count-1].EndPosition()
}

func (p *Program) ImportDeclarations() []*ImportDeclaration {
	var declarations []*ImportDeclaration
	for _, declaration := range p.Declarations {
		if importDeclaration, ok := declaration.(*ImportDeclaration); ok {
			declarations = append(declarations, importDeclaration)
		}
	}
	return declarations
}

func (p *Program) UsingForDeclarations() []*UsingForDeclaration {
	var declarations []*UsingForDeclaration
	for _, declaration := range p.Declarations {
		if usingDeclaration, ok := declaration.(*UsingForDeclaration); ok {
			declarations = append(declarations, usingDeclaration)
		}
	}
	return declarations
}
