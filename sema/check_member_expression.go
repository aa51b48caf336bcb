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
)

// visitMemberExpression types a bare member access (`value.member`),
// i.e. one that is not the callee of an invocation.
// Only struct fields are accessible this way:
// attached functions can only be called, not referenced.
func (checker *Checker) visitMemberExpression(expression *ast.MemberExpression) TypeAnnotation {

	receiverAnnotation := checker.visitExpression(expression.Expression)
	receiverType := receiverAnnotation.Type

	if IsInvalidType(receiverType) {
		return NewTypeAnnotation(InvalidType, common.DataLocationDefault)
	}

	if structType, ok := receiverType.(*StructType); ok {
		field := structType.FieldMember(expression.Identifier.Identifier)
		if field != nil {
			return fieldAccessAnnotation(receiverAnnotation, field)
		}
	}

	checker.reportNoViableOverload(expression, receiverAnnotation, nil, nil)

	return NewTypeAnnotation(InvalidType, common.DataLocationDefault)
}

// fieldAccessAnnotation determines the type of a struct field access.
// Fields of reference type inherit the receiver's data location.
func fieldAccessAnnotation(
	receiverAnnotation TypeAnnotation,
	field *FieldMember,
) TypeAnnotation {

	annotation := field.TypeAnnotation
	if annotation.Type.IsReferenceType() {
		annotation.DataLocation = receiverAnnotation.DataLocation
	}
	return annotation
}

// visitInvocationExpression types an invocation.
// An invocation of a member expression (`value.f(...)`)
// resolves `f` against the attachments visible for the value's type,
// with the value passed as the implicit first argument.
func (checker *Checker) visitInvocationExpression(expression *ast.InvocationExpression) TypeAnnotation {

	invalid := NewTypeAnnotation(InvalidType, common.DataLocationDefault)

	argumentTypes := make([]TypeAnnotation, 0, len(expression.Arguments))
	argumentsValid := true
	for _, argument := range expression.Arguments {
		argumentType := checker.visitExpression(argument)
		if IsInvalidType(argumentType.Type) {
			argumentsValid = false
		}
		argumentTypes = append(argumentTypes, argumentType)
	}

	memberExpression, ok := expression.InvokedExpression.(*ast.MemberExpression)
	if !ok {
		// Only member-style invocations are subject to attachment resolution.
		// Direct calls (`f(x)`, `Lib.f(x)`) resolve through ordinary lookup.
		return checker.visitDirectInvocation(expression, argumentTypes)
	}

	receiverAnnotation := checker.visitExpression(memberExpression.Expression)
	receiverType := receiverAnnotation.Type

	if IsInvalidType(receiverType) || !argumentsValid {
		return invalid
	}

	name := memberExpression.Identifier.Identifier

	// Struct fields take precedence over attached functions

	if structType, ok := receiverType.(*StructType); ok {
		if field := structType.FieldMember(name); field != nil {
			checker.reportNoViableOverload(memberExpression, receiverAnnotation, argumentTypes, nil)
			return invalid
		}
	}

	entry := checker.resolveMemberInvocation(
		memberExpression,
		receiverAnnotation,
		argumentTypes,
	)
	if entry == nil {
		return invalid
	}

	checker.Elaboration.SetMemberInvocationResolution(
		expression,
		MemberInvocationResolution{
			ReceiverType: receiverAnnotation,
			Entry:        entry,
		},
	)

	return invocationResultAnnotation(entry.Callable)
}

// resolveMemberInvocation resolves a member call by name against the
// attachments visible for the receiver type
func (checker *Checker) resolveMemberInvocation(
	memberExpression *ast.MemberExpression,
	receiverAnnotation TypeAnnotation,
	argumentTypes []TypeAnnotation,
) *BindingEntry {

	name := memberExpression.Identifier.Identifier

	candidates := checker.gatherAttachedMembers(
		receiverAnnotation.Type,
		RoleMember,
		func(entry *BindingEntry) bool {
			return entry.Callable.Identifier.Identifier == name
		},
	)

	// Lazy compatibility check: whole-library attachments were not
	// validated at the directive, so the receiver must be checked here

	var receiverCompatible []*BindingEntry
	for _, candidate := range candidates {
		parameters := candidate.Callable.FunctionType.Parameters
		if len(parameters) == 0 {
			continue
		}
		if !receiverAnnotation.IsImplicitlyConvertibleTo(parameters[0].TypeAnnotation) {
			continue
		}
		receiverCompatible = append(receiverCompatible, candidate)
	}

	viable := viableCandidates(receiverCompatible, argumentTypes)

	switch len(viable) {
	case 0:
		checker.reportNoViableOverload(
			memberExpression,
			receiverAnnotation,
			argumentTypes,
			entryCallables(candidates),
		)
		return nil

	case 1:
		return viable[0]
	}

	viable = mostSpecificCandidates(viable)
	if len(viable) == 1 {
		return viable[0]
	}

	checker.report(
		&AmbiguousOverloadError{
			ReceiverType: receiverAnnotation,
			Name:         name,
			Candidates:   entryCallables(viable),
			Range:        ast.NewRangeFromPositioned(memberExpression.Identifier),
		},
	)
	return nil
}

func (checker *Checker) reportNoViableOverload(
	memberExpression *ast.MemberExpression,
	receiverAnnotation TypeAnnotation,
	argumentTypes []TypeAnnotation,
	candidates []*Callable,
) {
	receiverType := receiverAnnotation.Type
	name := memberExpression.Identifier.Identifier

	var available []string
	seen := map[string]struct{}{}

	if structType, ok := receiverType.(*StructType); ok {
		for _, field := range structType.Fields {
			if _, ok := seen[field.Identifier]; ok {
				continue
			}
			seen[field.Identifier] = struct{}{}
			available = append(available, field.Identifier)
		}
	}

	attached := checker.gatherAttachedMembers(receiverType, RoleMember, nil)
	for _, entry := range attached {
		memberName := entry.Callable.Identifier.Identifier
		if _, ok := seen[memberName]; ok {
			continue
		}
		seen[memberName] = struct{}{}
		available = append(available, memberName)
	}

	checker.report(
		&NoViableOverloadError{
			ReceiverType:     receiverAnnotation,
			Name:             name,
			ArgumentTypes:    argumentTypes,
			Candidates:       candidates,
			AvailableMembers: available,
			SuggestMember:    checker.Config.SuggestionsEnabled,
			Range:            ast.NewRangeFromPositioned(memberExpression.Identifier),
		},
	)
}

// visitDirectInvocation types a non-member invocation:
// a free function call (`f(x)`).
func (checker *Checker) visitDirectInvocation(
	expression *ast.InvocationExpression,
	argumentTypes []TypeAnnotation,
) TypeAnnotation {

	invalid := NewTypeAnnotation(InvalidType, common.DataLocationDefault)

	identifierExpression, ok := expression.InvokedExpression.(*ast.IdentifierExpression)
	if !ok {
		return invalid
	}

	name := identifierExpression.Identifier.Identifier

	callable, exists := checker.functionDeclarations[name]
	if !exists {
		checker.report(
			&NotDeclaredError{
				Name:         name,
				Pos:          identifierExpression.Identifier.Pos,
				ExpectedKind: common.DeclarationKindFunction,
			},
		)
		return invalid
	}

	return invocationResultAnnotation(callable)
}

func invocationResultAnnotation(callable *Callable) TypeAnnotation {
	returns := callable.FunctionType.ReturnTypeAnnotations
	switch len(returns) {
	case 0:
		return NewTypeAnnotation(VoidType, common.DataLocationDefault)
	case 1:
		return returns[0]
	}
	// Tuple results cannot be further accessed as values
	return NewTypeAnnotation(VoidType, common.DataLocationDefault)
}

func entryCallables(entries []*BindingEntry) []*Callable {
	callables := make([]*Callable, 0, len(entries))
	for _, entry := range entries {
		callables = append(callables, entry.Callable)
	}
	return callables
}
