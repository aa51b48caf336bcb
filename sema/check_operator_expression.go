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

// visitBinaryExpression types a binary expression.
// For user-defined operand types, the operator resolves against the
// operator attachments visible for the operand type.
// Built-in operand types use the built-in operator rules.
func (checker *Checker) visitBinaryExpression(expression *ast.BinaryExpression) TypeAnnotation {

	invalid := NewTypeAnnotation(InvalidType, common.DataLocationDefault)

	leftAnnotation := checker.visitExpression(expression.Left)
	rightAnnotation := checker.visitExpression(expression.Right)

	leftType := leftAnnotation.Type
	rightType := rightAnnotation.Type

	if IsInvalidType(leftType) || IsInvalidType(rightType) {
		return invalid
	}

	operation := expression.Operation

	if leftType.IsUserDefined() {

		// Both operands must have the exact operand type:
		// operator attachments never apply implicit conversions

		if !TypesEqual(leftType, rightType) {
			checker.report(
				&InvalidBinaryOperandsError{
					Operation: operation,
					LeftType:  leftType,
					RightType: rightType,
					Range:     ast.NewRangeFromPositioned(expression),
				},
			)
			return invalid
		}

		entry := checker.resolveOperator(operation, leftType, expression)
		if entry == nil {
			return invalid
		}

		checker.Elaboration.SetBinaryExpressionOperatorFunction(
			expression,
			OperatorResolution{
				OperandType: leftType,
				Entry:       entry,
			},
		)

		return entry.Callable.FunctionType.ReturnTypeAnnotations[0]
	}

	// Built-in types

	if handler := checker.Config.BuiltinBinaryOperatorHandler; handler != nil {
		resultType, ok := handler(operation, leftType, rightType)
		if ok {
			return NewTypeAnnotation(resultType, common.DataLocationDefault)
		}
	} else if resultType, ok := builtinBinaryOperatorResult(operation, leftType, rightType); ok {
		return NewTypeAnnotation(resultType, common.DataLocationDefault)
	}

	checker.report(
		&InvalidBinaryOperandsError{
			Operation: operation,
			LeftType:  leftType,
			RightType: rightType,
			Range:     ast.NewRangeFromPositioned(expression),
		},
	)
	return invalid
}

// visitUnaryExpression types a unary expression,
// resolving user-defined operators like visitBinaryExpression does
func (checker *Checker) visitUnaryExpression(expression *ast.UnaryExpression) TypeAnnotation {

	invalid := NewTypeAnnotation(InvalidType, common.DataLocationDefault)

	operandAnnotation := checker.visitExpression(expression.Expression)
	operandType := operandAnnotation.Type

	if IsInvalidType(operandType) {
		return invalid
	}

	operation := expression.Operation

	if operandType.IsUserDefined() {

		entry := checker.resolveOperator(operation, operandType, expression)
		if entry == nil {
			return invalid
		}

		checker.Elaboration.SetUnaryExpressionOperatorFunction(
			expression,
			OperatorResolution{
				OperandType: operandType,
				Entry:       entry,
			},
		)

		return entry.Callable.FunctionType.ReturnTypeAnnotations[0]
	}

	if handler := checker.Config.BuiltinUnaryOperatorHandler; handler != nil {
		resultType, ok := handler(operation, operandType)
		if ok {
			return NewTypeAnnotation(resultType, common.DataLocationDefault)
		}
	} else if resultType, ok := builtinUnaryOperatorResult(operation, operandType); ok {
		return NewTypeAnnotation(resultType, common.DataLocationDefault)
	}

	checker.report(
		&InvalidUnaryOperandError{
			Operation:   operation,
			OperandType: operandType,
			Range:       ast.NewRangeFromPositioned(expression),
		},
	)
	return invalid
}

// resolveOperator resolves an operator application on a user-defined type
// against the visible operator attachments.
// Operator entries were fully validated at the directive,
// so any match is usable as-is.
func (checker *Checker) resolveOperator(
	operation ast.Operation,
	operandType Type,
	expression ast.Expression,
) *BindingEntry {

	candidates := checker.gatherAttachedMembers(
		operandType,
		RoleOperator,
		func(entry *BindingEntry) bool {
			return entry.Operation == operation
		},
	)

	switch len(candidates) {
	case 0:
		checker.report(
			&NoOperatorOverloadError{
				Operation:   operation,
				OperandType: operandType,
				Range:       ast.NewRangeFromPositioned(expression),
			},
		)
		return nil

	case 1:
		return candidates[0]
	}

	// Multiple distinct functions bind the same operator for the type.
	// All of them have identical signatures,
	// so no candidate can be preferred over another.
	checker.report(
		&AmbiguousOverloadError{
			ReceiverType: NewTypeAnnotation(operandType, common.DataLocationDefault),
			Name:         operation.Symbol(),
			Candidates:   entryCallables(candidates),
			Range:        ast.NewRangeFromPositioned(expression),
		},
	)
	return nil
}

// builtinBinaryOperatorResult implements the default operator rules
// for the built-in types
func builtinBinaryOperatorResult(
	operation ast.Operation,
	leftType Type,
	rightType Type,
) (Type, bool) {

	switch operation {
	case ast.OperationOr, ast.OperationAnd:
		if TypesEqual(leftType, TheBoolType) && TypesEqual(rightType, TheBoolType) {
			return TheBoolType, true
		}
		return nil, false

	case ast.OperationEqual, ast.OperationNotEqual:
		if TypesEqual(leftType, rightType) ||
			IsImplicitlyConvertible(leftType, rightType) ||
			IsImplicitlyConvertible(rightType, leftType) {

			return TheBoolType, true
		}
		return nil, false

	case ast.OperationLess, ast.OperationGreater,
		ast.OperationLessEqual, ast.OperationGreaterEqual:

		if commonIntegerType(leftType, rightType) != nil {
			return TheBoolType, true
		}
		return nil, false

	case ast.OperationPlus, ast.OperationMinus,
		ast.OperationMul, ast.OperationDiv, ast.OperationMod:

		if result := commonIntegerType(leftType, rightType); result != nil {
			return result, true
		}
		return nil, false

	case ast.OperationBitwiseOr, ast.OperationBitwiseXor, ast.OperationBitwiseAnd:
		if result := commonIntegerType(leftType, rightType); result != nil {
			return result, true
		}
		if TypesEqual(leftType, rightType) {
			if _, ok := leftType.(*FixedBytesType); ok {
				return leftType, true
			}
		}
		return nil, false

	case ast.OperationBitwiseLeftShift, ast.OperationBitwiseRightShift:
		left, leftOk := leftType.(*IntegerType)
		_, rightOk := rightType.(*IntegerType)
		if leftOk && rightOk {
			return left, true
		}
		return nil, false
	}

	return nil, false
}

func builtinUnaryOperatorResult(operation ast.Operation, operandType Type) (Type, bool) {
	switch operation {
	case ast.OperationNot:
		if TypesEqual(operandType, TheBoolType) {
			return TheBoolType, true
		}

	case ast.OperationMinus:
		if integerType, ok := operandType.(*IntegerType); ok && integerType.Signed {
			return integerType, true
		}

	case ast.OperationBitwiseNot:
		switch operandType.(type) {
		case *IntegerType, *FixedBytesType:
			return operandType, true
		}
	}

	return nil, false
}

// commonIntegerType returns the wider of two integer types
// of the same signedness, or nil
func commonIntegerType(leftType, rightType Type) Type {
	left, leftOk := leftType.(*IntegerType)
	right, rightOk := rightType.(*IntegerType)
	if !leftOk || !rightOk || left.Signed != right.Signed {
		return nil
	}
	if left.Bits >= right.Bits {
		return left
	}
	return right
}
