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

// declareUsingDirective processes a `using ... for ...;` directive
// into the binding table of the appropriate scope.
//
// Explicit function lists and operator lists are validated eagerly:
// an incompatible function is reported and not bound.
// Attaching a whole library defers validation to the call sites.
func (checker *Checker) declareUsingDirective(declaration *ast.UsingForDeclaration) {

	isGlobal := declaration.IsGlobal

	if isGlobal && checker.inContainerScope {
		checker.report(
			&InvalidGlobalTargetError{
				Range: ast.NewRangeFromPositioned(declaration),
			},
		)
		return
	}

	// Determine the target type

	var targetType Type

	if declaration.IsWildcard() {
		if !checker.inContainerScope || isGlobal {
			checker.report(
				&InvalidWildcardTargetError{
					Range: ast.NewRangeFromPositioned(declaration),
				},
			)
			return
		}
	} else {
		targetType = checker.convertType(declaration.Target)
		if IsInvalidType(targetType) {
			// Conversion already reported an error
			return
		}
	}

	if isGlobal {
		if targetType == nil ||
			!targetType.IsUserDefined() ||
			!common.LocationsMatch(userDefinedTypeLocation(targetType), checker.Location) {

			checker.report(
				&InvalidGlobalTargetError{
					TargetType: targetType,
					Range:      ast.NewRangeFromPositioned(declaration),
				},
			)
			return
		}
	}

	// Resolve the source and produce binding entries

	var entries []*BindingEntry

	if declaration.Library != nil {
		entries = checker.libraryDirectiveEntries(declaration, targetType)
	} else {
		entries = checker.itemDirectiveEntries(declaration, targetType)
	}

	for _, entry := range entries {
		checker.insertBindingEntry(entry, isGlobal)
	}

	checker.Elaboration.SetUsingDirectiveEntries(declaration, entries)
}

func (checker *Checker) insertBindingEntry(entry *BindingEntry, isGlobal bool) {
	if isGlobal {
		checker.globalAttachments.Insert(entry)
	} else {
		checker.attachmentScopes.Current().Insert(entry)
	}
}

// libraryDirectiveEntries handles `using Lib for T;`:
// every library function becomes a member binding,
// without any compatibility check
func (checker *Checker) libraryDirectiveEntries(
	declaration *ast.UsingForDeclaration,
	targetType Type,
) []*BindingEntry {

	libraryType := checker.resolveLibrary(declaration.Library)
	if libraryType == nil {
		return nil
	}

	entries := make([]*BindingEntry, 0, len(libraryType.Functions))
	for _, function := range libraryType.Functions {
		entries = append(
			entries,
			&BindingEntry{
				Type:      targetType,
				Callable:  function,
				Role:      RoleMember,
				Directive: declaration,
			},
		)
	}
	return entries
}

// itemDirectiveEntries handles `using {Lib.f, g, Lib.add as +} for T;`
func (checker *Checker) itemDirectiveEntries(
	declaration *ast.UsingForDeclaration,
	targetType Type,
) []*BindingEntry {

	var entries []*BindingEntry

	for _, item := range declaration.Items {

		callable := checker.resolveUsingItemFunction(item.Function)
		if callable == nil {
			continue
		}

		if item.Operation == ast.OperationUnknown {
			entry := checker.memberItemEntry(declaration, item, targetType, callable)
			if entry != nil {
				entries = append(entries, entry)
			}
			continue
		}

		entry := checker.operatorItemEntry(declaration, item, targetType, callable)
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	return entries
}

// memberItemEntry validates a plain item:
// the target type must be implicitly convertible
// to the function's first parameter type
func (checker *Checker) memberItemEntry(
	declaration *ast.UsingForDeclaration,
	item ast.UsingItem,
	targetType Type,
	callable *Callable,
) *BindingEntry {

	parameters := callable.FunctionType.Parameters

	compatible := len(parameters) > 0 &&
		IsImplicitlyConvertible(targetType, parameters[0].TypeAnnotation.Type)

	if !compatible {
		checker.report(
			&IncompatibleFirstParameterError{
				TargetType: targetType,
				Callable:   callable,
				Range:      ast.NewRangeFromPositioned(item.Function),
			},
		)
		return nil
	}

	return &BindingEntry{
		Type:      targetType,
		Callable:  callable,
		Role:      RoleMember,
		Directive: declaration,
	}
}

// operatorItemEntry validates an operator item (`Lib.add as +`):
// the operator must be user-definable,
// the target must be a user-defined type,
// the function's arity must match the operator,
// all parameter and return types must be exactly the target type,
// and the parameter and return data locations must agree
func (checker *Checker) operatorItemEntry(
	declaration *ast.UsingForDeclaration,
	item ast.UsingItem,
	targetType Type,
	callable *Callable,
) *BindingEntry {

	operation := item.Operation

	reportMismatch := func() {
		checker.report(
			&OperatorTypeMismatchError{
				Operation:  operation,
				TargetType: targetType,
				Callable:   callable,
				Range:      ast.NewRangeFromPositioned(item.Function),
			},
		)
	}

	if !operation.IsUserDefinable() {
		checker.report(
			&InvalidOperatorError{
				Operation: operation,
				Range:     ast.NewRangeFromPositioned(item.Function),
			},
		)
		return nil
	}

	if targetType == nil || !targetType.IsUserDefined() {
		checker.report(
			&InvalidOperatorTargetError{
				TargetType: targetType,
				Range:      ast.NewRangeFromPositioned(declaration),
			},
		)
		return nil
	}

	functionType := callable.FunctionType
	parameters := functionType.Parameters
	returns := functionType.ReturnTypeAnnotations

	arity := len(parameters)
	arityMatches :=
		(operation.IsUnary() && arity == 1) ||
			(operation.IsBinary() && arity == 2)

	if !arityMatches || len(returns) != 1 {
		reportMismatch()
		return nil
	}

	// Exact type identity for all parameters and the return value.
	// Data locations must agree across parameters and return,
	// but do not have to match the directive itself.

	dataLocation := parameters[0].TypeAnnotation.DataLocation

	for _, parameter := range parameters {
		annotation := parameter.TypeAnnotation
		if !TypesEqual(annotation.Type, targetType) ||
			annotation.DataLocation != dataLocation {

			reportMismatch()
			return nil
		}
	}

	returnAnnotation := returns[0]
	if !TypesEqual(returnAnnotation.Type, targetType) ||
		returnAnnotation.DataLocation != dataLocation {

		reportMismatch()
		return nil
	}

	return &BindingEntry{
		Type:      targetType,
		Callable:  callable,
		Role:      RoleOperator,
		Operation: operation,
		Directive: declaration,
	}
}

// resolveLibrary resolves the library name of a `using Lib for T;` directive
func (checker *Checker) resolveLibrary(nominalType *ast.NominalType) *LibraryType {
	name := nominalType.Identifier.Identifier

	ty, exists := checker.typeActivations.Find(name)
	libraryType, isLibrary := ty.(*LibraryType)
	if !exists || !isLibrary {
		checker.report(
			&NotDeclaredError{
				Name:         name,
				Pos:          nominalType.Identifier.Pos,
				ExpectedKind: common.DeclarationKindLibrary,
			},
		)
		return nil
	}

	return libraryType
}

// resolveUsingItemFunction resolves an item function reference,
// either a file-level free function (`f`)
// or a library function (`Lib.f`)
func (checker *Checker) resolveUsingItemFunction(nominalType *ast.NominalType) *Callable {

	name := nominalType.Identifier.Identifier

	// Free function

	if len(nominalType.NestedIdentifiers) == 0 {
		callable, exists := checker.functionDeclarations[name]
		if !exists {
			checker.report(
				&NotDeclaredError{
					Name:         name,
					Pos:          nominalType.Identifier.Pos,
					ExpectedKind: common.DeclarationKindFunction,
				},
			)
			return nil
		}
		return callable
	}

	// Library function

	libraryType := checker.resolveLibrary(nominalType)
	if libraryType == nil {
		return nil
	}

	functionIdentifier := nominalType.NestedIdentifiers[0]
	functionName := functionIdentifier.Identifier

	callable := libraryType.Function(functionName)
	if callable == nil {
		checker.report(
			&NotDeclaredError{
				Name:         functionName,
				Pos:          functionIdentifier.Pos,
				ExpectedKind: common.DeclarationKindFunction,
			},
		)
		return nil
	}

	return callable
}

// userDefinedTypeLocation returns the declaration location of a
// user-defined type, or nil for built-in types
func userDefinedTypeLocation(ty Type) common.Location {
	switch ty := ty.(type) {
	case *StructType:
		return ty.Location
	case *ValueType:
		return ty.Location
	case *ContractType:
		return ty.Location
	case *LibraryType:
		return ty.Location
	}
	return nil
}
