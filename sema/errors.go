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
	"fmt"
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/basalt-lang/basalt/ast"
	"github.com/basalt-lang/basalt/common"
	"github.com/basalt-lang/basalt/errors"
	"github.com/basalt-lang/basalt/pretty"
)

// CheckerError

type CheckerError struct {
	Location common.Location
	Codes    map[common.Location]string
	Errors   []error
}

var _ errors.UserError = CheckerError{}
var _ errors.ParentError = CheckerError{}

func (CheckerError) IsUserError() {}

func (e CheckerError) Error() string {
	var sb strings.Builder
	sb.WriteString("Checking failed:\n")
	printErr := pretty.NewErrorPrettyPrinter(&sb, false).
		PrettyPrintError(e, e.Location, e.Codes)
	if printErr != nil {
		panic(printErr)
	}
	return sb.String()
}

func (e CheckerError) ChildErrors() []error {
	return e.Errors
}

func (e CheckerError) Unwrap() []error {
	return e.Errors
}

// CompilationError

// CompilationError aggregates the CheckerErrors
// of the units of a compilation
type CompilationError struct {
	Errors []error
}

var _ errors.UserError = CompilationError{}
var _ errors.ParentError = CompilationError{}

func (CompilationError) IsUserError() {}

func (e CompilationError) Error() string {
	var sb strings.Builder
	sb.WriteString("Compilation failed:\n")
	for _, err := range e.Errors {
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (e CompilationError) ChildErrors() []error {
	return e.Errors
}

func (e CompilationError) Unwrap() []error {
	return e.Errors
}

// SemanticError

type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

// RedeclarationError

type RedeclarationError struct {
	PreviousPos *ast.Position
	Name        string
	Pos         ast.Position
	Kind        common.DeclarationKind
}

var _ SemanticError = &RedeclarationError{}
var _ errors.UserError = &RedeclarationError{}

func (*RedeclarationError) isSemanticError() {}

func (*RedeclarationError) IsUserError() {}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf(
		"cannot redeclare %s: `%s` is already declared",
		e.Kind.Name(),
		e.Name,
	)
}

func (e *RedeclarationError) StartPosition() ast.Position {
	return e.Pos
}

func (e *RedeclarationError) EndPosition() ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(length - 1)
}

func (e *RedeclarationError) ErrorNotes() []errors.ErrorNote {
	if e.PreviousPos == nil || e.PreviousPos.Line < 1 {
		return nil
	}

	previousStartPos := *e.PreviousPos
	length := len(e.Name)
	previousEndPos := previousStartPos.Shifted(length - 1)

	return []errors.ErrorNote{
		&RedeclarationNote{
			Range: ast.NewRange(
				previousStartPos,
				previousEndPos,
			),
		},
	}
}

// RedeclarationNote

type RedeclarationNote struct {
	ast.Range
}

func (n RedeclarationNote) Message() string {
	return "previously declared here"
}

// NotDeclaredError

type NotDeclaredError struct {
	Name         string
	Pos          ast.Position
	ExpectedKind common.DeclarationKind
}

var _ SemanticError = &NotDeclaredError{}
var _ errors.SecondaryError = &NotDeclaredError{}

func (*NotDeclaredError) isSemanticError() {}

func (*NotDeclaredError) IsUserError() {}

func (e *NotDeclaredError) Error() string {
	return fmt.Sprintf(
		"cannot find %s in this scope: `%s`",
		e.ExpectedKind.Name(),
		e.Name,
	)
}

func (e *NotDeclaredError) SecondaryError() string {
	return "not found in this scope"
}

func (e *NotDeclaredError) StartPosition() ast.Position {
	return e.Pos
}

func (e *NotDeclaredError) EndPosition() ast.Position {
	length := len(e.Name)
	return e.Pos.Shifted(length - 1)
}

// IncompatibleFirstParameterError

type IncompatibleFirstParameterError struct {
	TargetType Type
	Callable   *Callable
	ast.Range
}

var _ SemanticError = &IncompatibleFirstParameterError{}
var _ errors.SecondaryError = &IncompatibleFirstParameterError{}

func (*IncompatibleFirstParameterError) isSemanticError() {}

func (*IncompatibleFirstParameterError) IsUserError() {}

func (e *IncompatibleFirstParameterError) Error() string {
	return fmt.Sprintf(
		"cannot attach function `%s` to type `%s`",
		e.Callable.QualifiedName(),
		e.TargetType.QualifiedString(),
	)
}

func (e *IncompatibleFirstParameterError) SecondaryError() string {
	parameters := e.Callable.FunctionType.Parameters
	if len(parameters) == 0 {
		return "the function has no parameters"
	}
	return fmt.Sprintf(
		"the type is not implicitly convertible to the first parameter type `%s`",
		parameters[0].TypeAnnotation.QualifiedString(),
	)
}

// OperatorTypeMismatchError

type OperatorTypeMismatchError struct {
	Operation  ast.Operation
	TargetType Type
	Callable   *Callable
	ast.Range
}

var _ SemanticError = &OperatorTypeMismatchError{}
var _ errors.SecondaryError = &OperatorTypeMismatchError{}

func (*OperatorTypeMismatchError) isSemanticError() {}

func (*OperatorTypeMismatchError) IsUserError() {}

func (e *OperatorTypeMismatchError) Error() string {
	return fmt.Sprintf(
		"cannot bind function `%s` to operator `%s` for type `%s`",
		e.Callable.QualifiedName(),
		e.Operation.Symbol(),
		e.TargetType.QualifiedString(),
	)
}

func (e *OperatorTypeMismatchError) SecondaryError() string {
	return fmt.Sprintf(
		"an operator function must take and return only the attached type `%s`, "+
			"with matching data locations",
		e.TargetType.QualifiedString(),
	)
}

// InvalidOperatorError

type InvalidOperatorError struct {
	Operation ast.Operation
	ast.Range
}

var _ SemanticError = &InvalidOperatorError{}

func (*InvalidOperatorError) isSemanticError() {}

func (*InvalidOperatorError) IsUserError() {}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf(
		"operator `%s` cannot be user-defined",
		e.Operation.Symbol(),
	)
}

// InvalidOperatorTargetError

type InvalidOperatorTargetError struct {
	TargetType Type
	ast.Range
}

var _ SemanticError = &InvalidOperatorTargetError{}
var _ errors.SecondaryError = &InvalidOperatorTargetError{}

func (*InvalidOperatorTargetError) isSemanticError() {}

func (*InvalidOperatorTargetError) IsUserError() {}

func (e *InvalidOperatorTargetError) Error() string {
	if e.TargetType == nil {
		return "cannot bind operators for a wildcard target"
	}
	return fmt.Sprintf(
		"cannot bind operators for built-in type `%s`",
		e.TargetType.QualifiedString(),
	)
}

func (e *InvalidOperatorTargetError) SecondaryError() string {
	return "operators can only be bound for user-defined types"
}

// InvalidWildcardTargetError

type InvalidWildcardTargetError struct {
	ast.Range
}

var _ SemanticError = &InvalidWildcardTargetError{}
var _ errors.SecondaryError = &InvalidWildcardTargetError{}

func (*InvalidWildcardTargetError) isSemanticError() {}

func (*InvalidWildcardTargetError) IsUserError() {}

func (e *InvalidWildcardTargetError) Error() string {
	return "invalid wildcard target `*`"
}

func (e *InvalidWildcardTargetError) SecondaryError() string {
	return "`using ... for *` is only allowed inside a contract"
}

// InvalidGlobalTargetError

type InvalidGlobalTargetError struct {
	// TargetType is nil if the directive has a wildcard target
	TargetType Type
	ast.Range
}

var _ SemanticError = &InvalidGlobalTargetError{}
var _ errors.SecondaryError = &InvalidGlobalTargetError{}

func (*InvalidGlobalTargetError) isSemanticError() {}

func (*InvalidGlobalTargetError) IsUserError() {}

func (e *InvalidGlobalTargetError) Error() string {
	return "invalid `global` directive"
}

func (e *InvalidGlobalTargetError) SecondaryError() string {
	if e.TargetType == nil {
		return "`global` can only be used at file level, " +
			"for a user-defined type declared in the same file"
	}
	return fmt.Sprintf(
		"`global` can only be used at file level, "+
			"and `%s` is not a user-defined type declared in this file",
		e.TargetType.QualifiedString(),
	)
}

// NoViableOverloadError

type NoViableOverloadError struct {
	ReceiverType     TypeAnnotation
	Name             string
	ArgumentTypes    []TypeAnnotation
	Candidates       []*Callable
	AvailableMembers []string
	SuggestMember    bool
	ast.Range
}

var _ SemanticError = &NoViableOverloadError{}
var _ errors.SecondaryError = &NoViableOverloadError{}

func (*NoViableOverloadError) isSemanticError() {}

func (*NoViableOverloadError) IsUserError() {}

func (e *NoViableOverloadError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf(
			"value of type `%s` has no member `%s`",
			e.ReceiverType.Type.QualifiedString(),
			e.Name,
		)
	}
	return fmt.Sprintf(
		"no viable overload of `%s` for value of type `%s`",
		e.Name,
		e.ReceiverType.QualifiedString(),
	)
}

func (e *NoViableOverloadError) SecondaryError() string {
	if len(e.Candidates) == 0 {
		if e.SuggestMember {
			closestMember := e.closestMember()
			if closestMember != "" {
				return fmt.Sprintf("did you mean `%s`?", closestMember)
			}
		}
		return "unknown member"
	}

	var sb strings.Builder
	sb.WriteString("none of the attached functions accepts the arguments (")
	for i, argumentType := range e.ArgumentTypes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(argumentType.QualifiedString())
	}
	sb.WriteString("):")
	for _, candidate := range e.Candidates {
		sb.WriteString("\n    ")
		sb.WriteString(candidate.String())
	}
	return sb.String()
}

// closestMember returns the member name closest to the missing one,
// or the empty string if there is no close match
func (e *NoViableOverloadError) closestMember() (closestMember string) {
	nameRunes := []rune(e.Name)

	closestDistance := len(e.Name)

	for _, member := range e.AvailableMembers {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(member),
			levenshtein.DefaultOptions,
		)

		// Don't update the closest member if the distance is greater
		// than one already found
		if distance >= closestDistance {
			continue
		}

		closestMember = member
		closestDistance = distance
	}

	return
}

// AmbiguousOverloadError

type AmbiguousOverloadError struct {
	ReceiverType TypeAnnotation
	Name         string
	Candidates   []*Callable
	ast.Range
}

var _ SemanticError = &AmbiguousOverloadError{}
var _ errors.SecondaryError = &AmbiguousOverloadError{}

func (*AmbiguousOverloadError) isSemanticError() {}

func (*AmbiguousOverloadError) IsUserError() {}

func (e *AmbiguousOverloadError) Error() string {
	return fmt.Sprintf(
		"ambiguous call of `%s` for value of type `%s`",
		e.Name,
		e.ReceiverType.Type.QualifiedString(),
	)
}

func (e *AmbiguousOverloadError) SecondaryError() string {
	var sb strings.Builder
	sb.WriteString("multiple attached functions are viable:")
	for _, candidate := range e.Candidates {
		sb.WriteString("\n    ")
		sb.WriteString(candidate.String())
	}
	return sb.String()
}

// NoOperatorOverloadError

type NoOperatorOverloadError struct {
	Operation   ast.Operation
	OperandType Type
	ast.Range
}

var _ SemanticError = &NoOperatorOverloadError{}
var _ errors.SecondaryError = &NoOperatorOverloadError{}

func (*NoOperatorOverloadError) isSemanticError() {}

func (*NoOperatorOverloadError) IsUserError() {}

func (e *NoOperatorOverloadError) Error() string {
	return fmt.Sprintf(
		"operator `%s` is not defined for type `%s`",
		e.Operation.Symbol(),
		e.OperandType.QualifiedString(),
	)
}

func (e *NoOperatorOverloadError) SecondaryError() string {
	return fmt.Sprintf(
		"bind a function to `%s` with a `using` directive",
		e.Operation.Symbol(),
	)
}

// InvalidBinaryOperandsError

type InvalidBinaryOperandsError struct {
	Operation ast.Operation
	LeftType  Type
	RightType Type
	ast.Range
}

var _ SemanticError = &InvalidBinaryOperandsError{}

func (*InvalidBinaryOperandsError) isSemanticError() {}

func (*InvalidBinaryOperandsError) IsUserError() {}

func (e *InvalidBinaryOperandsError) Error() string {
	return fmt.Sprintf(
		"cannot apply binary operation %s to types: `%s`, `%s`",
		e.Operation.Symbol(),
		e.LeftType.QualifiedString(),
		e.RightType.QualifiedString(),
	)
}

// InvalidUnaryOperandError

type InvalidUnaryOperandError struct {
	Operation   ast.Operation
	OperandType Type
	ast.Range
}

var _ SemanticError = &InvalidUnaryOperandError{}

func (*InvalidUnaryOperandError) isSemanticError() {}

func (*InvalidUnaryOperandError) IsUserError() {}

func (e *InvalidUnaryOperandError) Error() string {
	return fmt.Sprintf(
		"cannot apply unary operation %s to type: `%s`",
		e.Operation.Symbol(),
		e.OperandType.QualifiedString(),
	)
}

// UnresolvedImportError

type UnresolvedImportError struct {
	ImportedLocation common.Location
	ast.Range
}

var _ SemanticError = &UnresolvedImportError{}

func (*UnresolvedImportError) isSemanticError() {}

func (*UnresolvedImportError) IsUserError() {}

func (e *UnresolvedImportError) Error() string {
	return fmt.Sprintf(
		"cannot find imported unit: `%s`",
		e.ImportedLocation,
	)
}
