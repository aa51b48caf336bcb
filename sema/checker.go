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
	"github.com/basalt-lang/basalt/activations"
	"github.com/basalt-lang/basalt/ast"
	"github.com/basalt-lang/basalt/common"
	"github.com/basalt-lang/basalt/errors"
)

// baseTypes are the built-in types available in every source unit
var baseTypes = func() map[string]Type {
	types := map[string]Type{
		"bool":            TheBoolType,
		"address":         TheAddressType,
		"address payable": TheAddressPayableType,
		"bytes":           TheBytesType,
		"string":          TheStringType,
	}

	for bits := 8; bits <= 256; bits += 8 {
		unsigned := NewIntegerType(bits, false)
		signed := NewIntegerType(bits, true)
		types[unsigned.String()] = unsigned
		types[signed.String()] = signed
	}

	for size := 1; size <= 32; size++ {
		fixedBytes := &FixedBytesType{Size: size}
		types[fixedBytes.String()] = fixedBytes
	}

	return types
}()

// Checker performs the semantic analysis of a single source unit:
// it processes `using` directives into binding tables,
// and resolves member calls and operator expressions
// against the visible attachments.
type Checker struct {
	Program     *ast.Program
	Location    common.Location
	Config      *Config
	Elaboration *Elaboration

	globalAttachments    *GlobalAttachments
	attachmentScopes     *AttachmentActivations
	typeActivations      *activations.Activations[Type]
	valueActivations     *activations.Activations[*Variable]
	functionDeclarations map[string]*Callable

	// importableTypes are the file-level type declarations of this unit,
	// importable by other units. Attachments are never importable.
	importableTypes map[string]Type

	// currentContract is non-nil while checking a contract's members
	currentContract *ContractType

	// inContainerScope is true while checking the members
	// of a contract, interface, or library
	inContainerScope bool

	// per-declaration types created by the name pass,
	// resolved in detail by the second pass of declareDeclarations
	structDeclarationTypes  map[*ast.StructDeclaration]*StructType
	valueDeclarationTypes   map[*ast.ValueTypeDeclaration]*ValueType
	libraryDeclarationTypes map[*ast.ContractDeclaration]*LibraryType

	errors []error

	typeNamesDeclared    bool
	declarationsDeclared bool
	globalsCollected     bool
	isChecked            bool
}

// NewChecker creates a checker for the given program.
//
// The global attachment state is shared by all checkers
// of one compilation unit graph. Pass nil for a standalone checker.
func NewChecker(
	program *ast.Program,
	location common.Location,
	globalAttachments *GlobalAttachments,
	config *Config,
) (*Checker, error) {

	if location == nil {
		return nil, errors.NewDefaultUserError("missing location")
	}

	if config == nil {
		config = &Config{}
	}

	if globalAttachments == nil {
		globalAttachments = NewGlobalAttachments()
	}

	checker := &Checker{
		Program:              program,
		Location:             location,
		Config:               config,
		Elaboration:          NewElaboration(),
		globalAttachments:    globalAttachments,
		attachmentScopes:     &AttachmentActivations{},
		typeActivations:      activations.NewActivations[Type](),
		valueActivations:     activations.NewActivations[*Variable](),
		functionDeclarations: map[string]*Callable{},
		importableTypes:      map[string]Type{},
	}

	// Base activation with the built-in types

	checker.typeActivations.PushNew()
	for name, ty := range baseTypes { //nolint:maprange
		checker.typeActivations.Set(name, ty)
	}

	// File-level activation

	checker.typeActivations.PushNew()
	checker.valueActivations.PushNew()

	return checker, nil
}

func (checker *Checker) GlobalAttachments() *GlobalAttachments {
	return checker.globalAttachments
}

func (checker *Checker) Errors() []error {
	return checker.errors
}

func (checker *Checker) report(err error) {
	if err == nil {
		return
	}
	checker.errors = append(checker.errors, err)
}

// CollectGlobalDirectives performs the first analysis phase:
// file-level declarations are registered,
// and all `global` directives of the program are processed
// into the compilation-wide attachment state.
//
// Call-site resolution (Check) must not begin anywhere in the compilation
// before this phase has completed for every source unit.
func (checker *Checker) CollectGlobalDirectives() {
	checker.declareDeclarations()

	if checker.globalsCollected {
		return
	}
	checker.globalsCollected = true

	for _, declaration := range checker.Program.UsingForDeclarations() {
		if !declaration.IsGlobal {
			continue
		}
		if !checker.globalAttachments.BeginDirective(declaration) {
			continue
		}
		checker.declareUsingDirective(declaration)
	}
}

// Check performs the second analysis phase:
// non-global directives are processed into the scoped binding tables,
// and all member calls and operator expressions are resolved.
//
// The first phase runs implicitly if it has not run yet.
func (checker *Checker) Check() error {
	if !checker.isChecked {
		checker.CollectGlobalDirectives()

		checker.checkProgram()

		checker.isChecked = true
	}

	if len(checker.errors) > 0 {
		return CheckerError{
			Location: checker.Location,
			Errors:   checker.errors,
		}
	}

	return nil
}

func (checker *Checker) checkProgram() {

	// File scope

	checker.attachmentScopes.Enter()
	defer checker.attachmentScopes.Leave()

	for _, declaration := range checker.Program.Declarations {
		switch declaration := declaration.(type) {
		case *ast.UsingForDeclaration:
			// Global directives were already collected
			if declaration.IsGlobal {
				continue
			}
			checker.declareUsingDirective(declaration)

		case *ast.VariableDeclaration:
			checker.declareVariableDeclaration(declaration)
		}
	}

	// Bodies are checked after all file-level directives are in scope

	for _, declaration := range checker.Program.Declarations {
		switch declaration := declaration.(type) {
		case *ast.FunctionDeclaration:
			checker.checkFunctionDeclaration(declaration)

		case *ast.ContractDeclaration:
			if declaration.Kind == common.ContractKindLibrary {
				checker.checkLibraryDeclaration(declaration)
			} else {
				checker.checkContractDeclaration(declaration)
			}
		}
	}
}

// declareTypeNames registers the names of all file-level type declarations,
// without resolving any details.
// This allows other units to import the types
// before the details are resolved, which may in turn require imports.
func (checker *Checker) declareTypeNames() {
	if checker.typeNamesDeclared {
		return
	}
	checker.typeNamesDeclared = true

	for _, declaration := range checker.Program.Declarations {
		switch declaration := declaration.(type) {
		case *ast.StructDeclaration:
			structType := &StructType{
				Location:   checker.Location,
				Identifier: declaration.Identifier.Identifier,
			}
			if checker.structDeclarationTypes == nil {
				checker.structDeclarationTypes = map[*ast.StructDeclaration]*StructType{}
			}
			checker.structDeclarationTypes[declaration] = structType
			checker.declareFileType(declaration.Identifier, structType, declaration.DeclarationKind())

		case *ast.ValueTypeDeclaration:
			valueType := &ValueType{
				Location:   checker.Location,
				Identifier: declaration.Identifier.Identifier,
			}
			if checker.valueDeclarationTypes == nil {
				checker.valueDeclarationTypes = map[*ast.ValueTypeDeclaration]*ValueType{}
			}
			checker.valueDeclarationTypes[declaration] = valueType
			checker.declareFileType(declaration.Identifier, valueType, declaration.DeclarationKind())

		case *ast.ContractDeclaration:
			if declaration.Kind == common.ContractKindLibrary {
				libraryType := &LibraryType{
					Location:   checker.Location,
					Identifier: declaration.Identifier.Identifier,
				}
				if checker.libraryDeclarationTypes == nil {
					checker.libraryDeclarationTypes = map[*ast.ContractDeclaration]*LibraryType{}
				}
				checker.libraryDeclarationTypes[declaration] = libraryType
				checker.declareFileType(declaration.Identifier, libraryType, declaration.DeclarationKind())
			} else {
				contractType := &ContractType{
					Location:   checker.Location,
					Identifier: declaration.Identifier.Identifier,
					Kind:       declaration.Kind,
				}
				checker.declareFileType(declaration.Identifier, contractType, declaration.DeclarationKind())
			}
		}
	}
}

// declareDeclarations registers all file-level declarations.
// Declarations are order-independent:
// type names are registered first, then their details are resolved,
// so e.g. a struct field may refer to a type declared later in the file.
func (checker *Checker) declareDeclarations() {
	checker.declareTypeNames()

	if checker.declarationsDeclared {
		return
	}
	checker.declarationsDeclared = true

	// Second pass: resolve type details and declare functions

	for _, declaration := range checker.Program.Declarations {
		switch declaration := declaration.(type) {
		case *ast.StructDeclaration:
			structType := checker.structDeclarationTypes[declaration]
			for _, field := range declaration.Fields {
				structType.Fields = append(
					structType.Fields,
					&FieldMember{
						Identifier:     field.Identifier.Identifier,
						TypeAnnotation: checker.convertTypeAnnotation(field.TypeAnnotation),
					},
				)
			}

		case *ast.ValueTypeDeclaration:
			checker.valueDeclarationTypes[declaration].UnderlyingType =
				checker.convertType(declaration.UnderlyingType)

		case *ast.ContractDeclaration:
			if declaration.Kind != common.ContractKindLibrary {
				continue
			}
			libraryType := checker.libraryDeclarationTypes[declaration]
			for _, member := range declaration.Members {
				functionDeclaration, ok := member.(*ast.FunctionDeclaration)
				if !ok {
					continue
				}
				callable := checker.callableFromDeclaration(functionDeclaration)
				callable.Library = libraryType
				libraryType.Functions = append(libraryType.Functions, callable)
			}

		case *ast.FunctionDeclaration:
			checker.declareFunctionDeclaration(declaration)
		}
	}
}

// importTypesFrom makes the file-level type declarations of another unit
// visible in this unit. Only declarations are imported:
// the other unit's directives contribute nothing.
func (checker *Checker) importTypesFrom(imported *Checker) {
	for name, ty := range imported.importableTypes { //nolint:maprange
		if _, exists := checker.typeActivations.FindCurrent(name); exists {
			continue
		}
		checker.typeActivations.Set(name, ty)
	}
}

// declareFileType declares a file-level type and marks it importable
func (checker *Checker) declareFileType(
	identifier ast.Identifier,
	ty Type,
	kind common.DeclarationKind,
) {
	checker.declareType(identifier, ty, kind)
	checker.importableTypes[identifier.Identifier] = ty
}

func (checker *Checker) declareType(
	identifier ast.Identifier,
	ty Type,
	kind common.DeclarationKind,
) {
	name := identifier.Identifier

	if _, exists := checker.typeActivations.FindCurrent(name); exists {
		checker.report(
			&RedeclarationError{
				Kind: kind,
				Name: name,
				Pos:  identifier.Pos,
			},
		)
		// NOTE: still declare, the latest declaration wins
	}

	checker.typeActivations.Set(name, ty)
}

func (checker *Checker) declareFunctionDeclaration(declaration *ast.FunctionDeclaration) {
	name := declaration.Identifier.Identifier

	if previous, exists := checker.functionDeclarations[name]; exists {
		checker.report(
			&RedeclarationError{
				Kind:        common.DeclarationKindFunction,
				Name:        name,
				Pos:         declaration.Identifier.Pos,
				PreviousPos: &previous.Identifier.Pos,
			},
		)
		return
	}

	checker.functionDeclarations[name] = checker.callableFromDeclaration(declaration)
}

func (checker *Checker) callableFromDeclaration(declaration *ast.FunctionDeclaration) *Callable {
	functionType := &FunctionType{}

	if declaration.ParameterList != nil {
		for _, parameter := range declaration.ParameterList.Parameters {
			functionType.Parameters = append(
				functionType.Parameters,
				Parameter{
					Identifier:     parameter.Identifier.Identifier,
					TypeAnnotation: checker.convertTypeAnnotation(parameter.TypeAnnotation),
				},
			)
		}
	}

	for _, returnTypeAnnotation := range declaration.ReturnTypeAnnotations {
		functionType.ReturnTypeAnnotations = append(
			functionType.ReturnTypeAnnotations,
			checker.convertTypeAnnotation(returnTypeAnnotation),
		)
	}

	return &Callable{
		Identifier:   declaration.Identifier,
		Visibility:   declaration.Visibility,
		FunctionType: functionType,
		Location:     checker.Location,
	}
}

// convertType resolves a type reference to a semantic type.
// Failures are reported and result in InvalidType.
func (checker *Checker) convertType(t ast.Type) Type {
	switch t := t.(type) {
	case *ast.NominalType:
		if len(t.NestedIdentifiers) > 0 {
			checker.report(
				&NotDeclaredError{
					Name:         t.String(),
					Pos:          t.StartPosition(),
					ExpectedKind: common.DeclarationKindUnknown,
				},
			)
			return InvalidType
		}

		name := t.Identifier.Identifier
		ty, exists := checker.typeActivations.Find(name)
		if !exists {
			checker.report(
				&NotDeclaredError{
					Name:         name,
					Pos:          t.Identifier.Pos,
					ExpectedKind: common.DeclarationKindUnknown,
				},
			)
			return InvalidType
		}
		return ty

	case *ast.ArrayType:
		elementType := checker.convertType(t.ElementType)
		if IsInvalidType(elementType) {
			return InvalidType
		}
		return NewArrayType(elementType)
	}

	panic(errors.NewUnreachableError())
}

func (checker *Checker) convertTypeAnnotation(annotation *ast.TypeAnnotation) TypeAnnotation {
	if annotation == nil {
		return NewTypeAnnotation(InvalidType, common.DataLocationDefault)
	}
	return NewTypeAnnotation(
		checker.convertType(annotation.Type),
		annotation.DataLocation,
	)
}

func (checker *Checker) declareVariableDeclaration(declaration *ast.VariableDeclaration) {
	annotation := checker.convertTypeAnnotation(declaration.TypeAnnotation)

	checker.Elaboration.SetVariableDeclarationTypeAnnotation(declaration, annotation)

	name := declaration.Identifier.Identifier

	if previous, exists := checker.valueActivations.FindCurrent(name); exists {
		checker.report(
			&RedeclarationError{
				Kind:        common.DeclarationKindVariable,
				Name:        name,
				Pos:         declaration.Identifier.Pos,
				PreviousPos: previous.Pos,
			},
		)
	}

	pos := declaration.Identifier.Pos
	checker.valueActivations.Set(
		name,
		&Variable{
			Identifier:      name,
			DeclarationKind: common.DeclarationKindVariable,
			TypeAnnotation:  annotation,
			Pos:             &pos,
		},
	)

	if declaration.Value != nil {
		checker.visitExpression(declaration.Value)
	}
}

// checkContractDeclaration checks the members of a contract (or interface):
// contract-level directives open a new scope,
// visible to all functions of the contract, and nowhere else
func (checker *Checker) checkContractDeclaration(declaration *ast.ContractDeclaration) {

	contractType := &ContractType{
		Location:   checker.Location,
		Identifier: declaration.Identifier.Identifier,
		Kind:       declaration.Kind,
	}

	previousContract := checker.currentContract
	checker.currentContract = contractType
	checker.inContainerScope = true
	defer func() {
		checker.currentContract = previousContract
		checker.inContainerScope = false
	}()

	checker.attachmentScopes.Enter()
	defer checker.attachmentScopes.Leave()

	checker.typeActivations.PushNew()
	defer checker.typeActivations.Pop()

	checker.valueActivations.PushNew()
	defer checker.valueActivations.Pop()

	// Nested type declarations

	for _, member := range declaration.Members {
		switch member := member.(type) {
		case *ast.StructDeclaration:
			structType := &StructType{
				Location:   checker.Location,
				Identifier: declaration.Identifier.Identifier + "." + member.Identifier.Identifier,
			}
			for _, field := range member.Fields {
				structType.Fields = append(
					structType.Fields,
					&FieldMember{
						Identifier:     field.Identifier.Identifier,
						TypeAnnotation: checker.convertTypeAnnotation(field.TypeAnnotation),
					},
				)
			}
			checker.declareType(member.Identifier, structType, member.DeclarationKind())

		case *ast.ValueTypeDeclaration:
			valueType := &ValueType{
				Location:       checker.Location,
				Identifier:     declaration.Identifier.Identifier + "." + member.Identifier.Identifier,
				UnderlyingType: checker.convertType(member.UnderlyingType),
			}
			checker.declareType(member.Identifier, valueType, member.DeclarationKind())
		}
	}

	// State variables and directives

	for _, member := range declaration.Members {
		switch member := member.(type) {
		case *ast.VariableDeclaration:
			checker.declareVariableDeclaration(member)

		case *ast.UsingForDeclaration:
			checker.declareUsingDirective(member)
		}
	}

	// Function bodies

	for _, member := range declaration.Members {
		if functionDeclaration, ok := member.(*ast.FunctionDeclaration); ok {
			checker.checkFunctionDeclaration(functionDeclaration)
		}
	}
}

// checkLibraryDeclaration checks the function bodies of a library.
// Directives inside libraries behave like contract-scope directives.
func (checker *Checker) checkLibraryDeclaration(declaration *ast.ContractDeclaration) {

	checker.inContainerScope = true
	defer func() {
		checker.inContainerScope = false
	}()

	checker.attachmentScopes.Enter()
	defer checker.attachmentScopes.Leave()

	checker.valueActivations.PushNew()
	defer checker.valueActivations.Pop()

	for _, member := range declaration.Members {
		if usingDeclaration, ok := member.(*ast.UsingForDeclaration); ok {
			checker.declareUsingDirective(usingDeclaration)
		}
	}

	for _, member := range declaration.Members {
		if functionDeclaration, ok := member.(*ast.FunctionDeclaration); ok {
			checker.checkFunctionDeclaration(functionDeclaration)
		}
	}
}

func (checker *Checker) checkFunctionDeclaration(declaration *ast.FunctionDeclaration) {
	if declaration.FunctionBlock == nil {
		return
	}

	checker.valueActivations.PushNew()
	defer checker.valueActivations.Pop()

	if declaration.ParameterList != nil {
		for _, parameter := range declaration.ParameterList.Parameters {
			pos := parameter.Identifier.Pos
			checker.valueActivations.Set(
				parameter.Identifier.Identifier,
				&Variable{
					Identifier:      parameter.Identifier.Identifier,
					DeclarationKind: common.DeclarationKindParameter,
					TypeAnnotation:  checker.convertTypeAnnotation(parameter.TypeAnnotation),
					Pos:             &pos,
				},
			)
		}
	}

	for _, statement := range declaration.FunctionBlock.Statements {
		switch statement := statement.(type) {
		case *ast.VariableDeclaration:
			checker.declareVariableDeclaration(statement)

		case *ast.ExpressionStatement:
			checker.visitExpression(statement.Expression)
		}
	}
}

// visitExpression determines the type of an expression,
// resolving member calls and operators on the way.
// Failures are reported and result in InvalidType.
func (checker *Checker) visitExpression(expression ast.Expression) TypeAnnotation {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		return checker.visitIdentifierExpression(expression)

	case *ast.MemberExpression:
		return checker.visitMemberExpression(expression)

	case *ast.InvocationExpression:
		return checker.visitInvocationExpression(expression)

	case *ast.BinaryExpression:
		return checker.visitBinaryExpression(expression)

	case *ast.UnaryExpression:
		return checker.visitUnaryExpression(expression)
	}

	panic(errors.NewUnreachableError())
}

func (checker *Checker) visitIdentifierExpression(expression *ast.IdentifierExpression) TypeAnnotation {
	name := expression.Identifier.Identifier

	variable, exists := checker.valueActivations.Find(name)
	if !exists {
		checker.report(
			&NotDeclaredError{
				Name:         name,
				Pos:          expression.Identifier.Pos,
				ExpectedKind: common.DeclarationKindVariable,
			},
		)
		return NewTypeAnnotation(InvalidType, common.DataLocationDefault)
	}

	return variable.TypeAnnotation
}
