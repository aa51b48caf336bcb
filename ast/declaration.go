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

import (
	"github.com/basalt-lang/basalt/common"
)

// Declaration

type Declaration interface {
	HasPosition
	isDeclaration()
	DeclarationIdentifier() *Identifier
	DeclarationKind() common.DeclarationKind
}

// Parameter

type Parameter struct {
	Identifier     Identifier
	TypeAnnotation *TypeAnnotation
	StartPos       Position
}

func (p Parameter) StartPosition() Position {
	return p.StartPos
}

func (p Parameter) EndPosition() Position {
	if p.Identifier.Identifier != "" {
		return p.Identifier.EndPosition()
	}
	return p.TypeAnnotation.EndPosition()
}

// ParameterList

type ParameterList struct {
	Parameters []*Parameter
	Range
}

// FunctionDeclaration

type FunctionDeclaration struct {
	Identifier            Identifier
	ParameterList         *ParameterList
	ReturnTypeAnnotations []*TypeAnnotation
	Visibility            Visibility
	FunctionBlock         *Block
	Range
}

var _ Declaration = &FunctionDeclaration{}

func (*FunctionDeclaration) isDeclaration() {}

func (d *FunctionDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

// FieldDeclaration

type FieldDeclaration struct {
	Identifier     Identifier
	TypeAnnotation *TypeAnnotation
	Range
}

// StructDeclaration

type StructDeclaration struct {
	Identifier Identifier
	Fields     []*FieldDeclaration
	Range
}

var _ Declaration = &StructDeclaration{}

func (*StructDeclaration) isDeclaration() {}

func (d *StructDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *StructDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindStructure
}

// ValueTypeDeclaration represents a user-defined value type declaration,
// e.g. `type Fixed is uint256;`
type ValueTypeDeclaration struct {
	Identifier     Identifier
	UnderlyingType Type
	Range
}

var _ Declaration = &ValueTypeDeclaration{}

func (*ValueTypeDeclaration) isDeclaration() {}

func (d *ValueTypeDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *ValueTypeDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindValueType
}

// ContractDeclaration represents a contract, library,
// or contract interface declaration
type ContractDeclaration struct {
	Kind       common.ContractKind
	Identifier Identifier
	Members    []Declaration
	Range
}

var _ Declaration = &ContractDeclaration{}

func (*ContractDeclaration) isDeclaration() {}

func (d *ContractDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *ContractDeclaration) DeclarationKind() common.DeclarationKind {
	return d.Kind.DeclarationKind()
}

// VariableDeclaration declares a variable with an explicit type annotation,
// either as a state variable of a contract,
// or as a local variable in a function block
type VariableDeclaration struct {
	Identifier     Identifier
	TypeAnnotation *TypeAnnotation
	Value          Expression `json:",omitempty"`
	Range
}

var _ Declaration = &VariableDeclaration{}
var _ Statement = &VariableDeclaration{}

func (*VariableDeclaration) isDeclaration() {}

func (*VariableDeclaration) isStatement() {}

func (d *VariableDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *VariableDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindVariable
}

// ImportDeclaration

type ImportDeclaration struct {
	ImportedLocation common.Location
	Range
}

var _ Declaration = &ImportDeclaration{}

func (*ImportDeclaration) isDeclaration() {}

func (d *ImportDeclaration) DeclarationIdentifier() *Identifier {
	return nil
}

func (d *ImportDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindImport
}
