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
)

// MemberInvocationResolution is the binding produced
// for a member call that resolved to an attached callable.
// The receiver is passed as the first argument of the callable.
type MemberInvocationResolution struct {
	ReceiverType TypeAnnotation
	Entry        *BindingEntry
}

// OperatorResolution is the binding produced for an operator expression
// that resolved to a user-defined operator function
type OperatorResolution struct {
	OperandType Type
	Entry       *BindingEntry
}

// Elaboration is the result side table of a Checker:
// resolved bindings for expression nodes,
// and the binding entries created per directive.
// It is consumed by downstream stages, e.g. code generation.
type Elaboration struct {
	MemberInvocationResolutions        map[*ast.InvocationExpression]MemberInvocationResolution
	BinaryExpressionOperatorFunctions  map[*ast.BinaryExpression]OperatorResolution
	UnaryExpressionOperatorFunctions   map[*ast.UnaryExpression]OperatorResolution
	UsingDirectiveEntries              map[*ast.UsingForDeclaration][]*BindingEntry
	VariableDeclarationTypeAnnotations map[*ast.VariableDeclaration]TypeAnnotation
}

func NewElaboration() *Elaboration {
	return &Elaboration{}
}

func (e *Elaboration) MemberInvocationResolution(
	expression *ast.InvocationExpression,
) (
	resolution MemberInvocationResolution,
	ok bool,
) {
	resolution, ok = e.MemberInvocationResolutions[expression]
	return
}

func (e *Elaboration) SetMemberInvocationResolution(
	expression *ast.InvocationExpression,
	resolution MemberInvocationResolution,
) {
	if e.MemberInvocationResolutions == nil {
		e.MemberInvocationResolutions = map[*ast.InvocationExpression]MemberInvocationResolution{}
	}
	e.MemberInvocationResolutions[expression] = resolution
}

func (e *Elaboration) BinaryExpressionOperatorFunction(
	expression *ast.BinaryExpression,
) (
	resolution OperatorResolution,
	ok bool,
) {
	resolution, ok = e.BinaryExpressionOperatorFunctions[expression]
	return
}

func (e *Elaboration) SetBinaryExpressionOperatorFunction(
	expression *ast.BinaryExpression,
	resolution OperatorResolution,
) {
	if e.BinaryExpressionOperatorFunctions == nil {
		e.BinaryExpressionOperatorFunctions = map[*ast.BinaryExpression]OperatorResolution{}
	}
	e.BinaryExpressionOperatorFunctions[expression] = resolution
}

func (e *Elaboration) UnaryExpressionOperatorFunction(
	expression *ast.UnaryExpression,
) (
	resolution OperatorResolution,
	ok bool,
) {
	resolution, ok = e.UnaryExpressionOperatorFunctions[expression]
	return
}

func (e *Elaboration) SetUnaryExpressionOperatorFunction(
	expression *ast.UnaryExpression,
	resolution OperatorResolution,
) {
	if e.UnaryExpressionOperatorFunctions == nil {
		e.UnaryExpressionOperatorFunctions = map[*ast.UnaryExpression]OperatorResolution{}
	}
	e.UnaryExpressionOperatorFunctions[expression] = resolution
}

func (e *Elaboration) SetUsingDirectiveEntries(
	declaration *ast.UsingForDeclaration,
	entries []*BindingEntry,
) {
	if e.UsingDirectiveEntries == nil {
		e.UsingDirectiveEntries = map[*ast.UsingForDeclaration][]*BindingEntry{}
	}
	e.UsingDirectiveEntries[declaration] = entries
}

func (e *Elaboration) SetVariableDeclarationTypeAnnotation(
	declaration *ast.VariableDeclaration,
	annotation TypeAnnotation,
) {
	if e.VariableDeclarationTypeAnnotations == nil {
		e.VariableDeclarationTypeAnnotations = map[*ast.VariableDeclaration]TypeAnnotation{}
	}
	e.VariableDeclarationTypeAnnotations[declaration] = annotation
}
