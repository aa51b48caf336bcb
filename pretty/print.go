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

package pretty

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/rivo/uniseg"

	"github.com/basalt-lang/basalt/ast"
	"github.com/basalt-lang/basalt/common"
	"github.com/basalt-lang/basalt/errors"
)

type Writer interface {
	io.Writer
	io.StringWriter
}

const errorPrefix = "error"
const excerptArrow = "--> "
const excerptDots = "... "

func FormatErrorMessage(prefix string, message string, useColor bool) string {
	var builder strings.Builder

	if useColor {
		builder.WriteString(aurora.Colorize(prefix, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String())
	} else {
		builder.WriteString(prefix)
	}

	if message != "" {
		builder.WriteString(": ")
		if useColor {
			builder.WriteString(aurora.Bold(message).String())
		} else {
			builder.WriteString(message)
		}
	}

	builder.WriteByte('\n')

	return builder.String()
}

type excerpt struct {
	startPos *ast.Position
	endPos   *ast.Position
	message  string
	isError  bool
}

func newExcerpts(obj any, message string) []excerpt {
	var excerpts []excerpt

	if positioned, hasPosition := obj.(ast.HasPosition); hasPosition {
		startPos := positioned.StartPosition()
		endPos := positioned.EndPosition()
		excerpts = append(excerpts,
			excerpt{
				startPos: &startPos,
				endPos:   &endPos,
				message:  message,
				isError:  true,
			},
		)
	} else {
		excerpts = append(excerpts,
			excerpt{
				message: message,
				isError: true,
			},
		)
	}

	if errorNotes, ok := obj.(errors.ErrorNotes); ok {
		for _, errorNote := range errorNotes.ErrorNotes() {
			if positioned, hasPosition := errorNote.(ast.HasPosition); hasPosition {
				startPos := positioned.StartPosition()
				endPos := positioned.EndPosition()
				excerpts = append(excerpts,
					excerpt{
						startPos: &startPos,
						endPos:   &endPos,
						message:  errorNote.Message(),
					},
				)
			}
		}
	}

	return excerpts
}

// ErrorPrettyPrinter prints errors with an excerpt of the source code,
// e.g.:
//
//	error: cannot apply binary operation + to types
//	 --> test:3:10
//	  |
//	3 |     let y = x + true
//	  |             ^^^^^^^^
type ErrorPrettyPrinter struct {
	writer   Writer
	useColor bool
}

func NewErrorPrettyPrinter(writer Writer, useColor bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer:   writer,
		useColor: useColor,
	}
}

func (p ErrorPrettyPrinter) writeString(str string) error {
	_, err := p.writer.WriteString(str)
	return err
}

func (p ErrorPrettyPrinter) PrettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location]string,
) error {
	return p.prettyPrintError(err, location, codes, true)
}

func (p ErrorPrettyPrinter) prettyPrintError(
	err error,
	location common.Location,
	codes map[common.Location]string,
	first bool,
) error {

	if parentErr, ok := err.(errors.ParentError); ok {
		for i, childErr := range parentErr.ChildErrors() {
			printErr := p.prettyPrintError(
				childErr,
				location,
				codes,
				first && i == 0,
			)
			if printErr != nil {
				return printErr
			}
		}
		return nil
	}

	if !first {
		if err := p.writeString("\n"); err != nil {
			return err
		}
	}

	message := err.Error()

	if err := p.writeString(FormatErrorMessage(errorPrefix, message, p.useColor)); err != nil {
		return err
	}

	var secondaryMessage string
	if secondaryError, ok := err.(errors.SecondaryError); ok {
		secondaryMessage = secondaryError.SecondaryError()
	}

	excerpts := newExcerpts(err, secondaryMessage)

	return p.printExcerpts(excerpts, location, codes[location])
}

func (p ErrorPrettyPrinter) printExcerpts(
	excerpts []excerpt,
	location common.Location,
	code string,
) error {

	var lines []string
	if code != "" {
		lines = strings.Split(code, "\n")
	}

	// Gutter width is sized for the largest printed line number
	maxLineNumberLength := 1
	for _, excerpt := range excerpts {
		if excerpt.startPos == nil || excerpt.startPos.Line > len(lines) {
			continue
		}
		lineNumberLength := len(strconv.Itoa(excerpt.startPos.Line))
		if lineNumberLength > maxLineNumberLength {
			maxLineNumberLength = lineNumberLength
		}
	}

	for i, excerpt := range excerpts {

		if excerpt.startPos != nil {
			if err := p.printArrow(location, *excerpt.startPos, maxLineNumberLength, i == 0); err != nil {
				return err
			}

			if excerpt.startPos.Line > 0 && excerpt.startPos.Line <= len(lines) {
				if err := p.printCodeLine(lines, excerpt, maxLineNumberLength); err != nil {
					return err
				}
			}
		} else if excerpt.message != "" {
			if err := p.writeString(excerpt.message); err != nil {
				return err
			}
			if err := p.writeString("\n"); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p ErrorPrettyPrinter) printArrow(
	location common.Location,
	startPos ast.Position,
	maxLineNumberLength int,
	isFirst bool,
) error {

	prefix := excerptArrow
	if !isFirst {
		prefix = excerptDots
	}

	if p.useColor {
		prefix = aurora.Colorize(prefix, aurora.CyanFg|aurora.BrightFg|aurora.BoldFm).String()
	}

	var locationName string
	if location != nil {
		locationName = location.String()
	}

	return p.writeString(
		fmt.Sprintf(
			"%s%s%s:%d:%d\n",
			strings.Repeat(" ", maxLineNumberLength),
			prefix,
			locationName,
			startPos.Line,
			startPos.Column,
		),
	)
}

func (p ErrorPrettyPrinter) printCodeLine(
	lines []string,
	excerpt excerpt,
	maxLineNumberLength int,
) error {

	line := lines[excerpt.startPos.Line-1]

	emptyGutter := fmt.Sprintf("%s |", strings.Repeat(" ", maxLineNumberLength))
	if p.useColor {
		emptyGutter = colorizeGutter(emptyGutter)
	}

	lineNumberString := strconv.Itoa(excerpt.startPos.Line)
	gutter := fmt.Sprintf(
		"%s%s | ",
		strings.Repeat(" ", maxLineNumberLength-len(lineNumberString)),
		lineNumberString,
	)
	if p.useColor {
		gutter = colorizeGutter(gutter)
	}

	if err := p.writeString(emptyGutter); err != nil {
		return err
	}
	if err := p.writeString("\n"); err != nil {
		return err
	}

	if err := p.writeString(gutter); err != nil {
		return err
	}
	if err := p.writeString(line); err != nil {
		return err
	}
	if err := p.writeString("\n"); err != nil {
		return err
	}

	if err := p.writeString(emptyGutter); err != nil {
		return err
	}
	if err := p.writeString(" "); err != nil {
		return err
	}

	// Print the underline below the excerpt.
	// Non-tab characters before the start column are replaced with spaces,
	// tabs are kept so the underline lines up with the excerpt above

	startColumn := excerpt.startPos.Column

	endColumn := len(line) - 1
	if excerpt.endPos != nil &&
		excerpt.endPos.Line == excerpt.startPos.Line &&
		excerpt.endPos.Column < endColumn {

		endColumn = excerpt.endPos.Column
	}

	var underline strings.Builder

	column := 0
	graphemes := uniseg.NewGraphemes(line)
	for graphemes.Next() && column <= endColumn {
		str := graphemes.Str()
		switch {
		case column < startColumn:
			if str == "\t" {
				underline.WriteString(str)
			} else {
				underline.WriteByte(' ')
			}
		default:
			underline.WriteByte('^')
		}
		column += len(str)
	}

	underlineString := underline.String()
	if p.useColor {
		if excerpt.isError {
			underlineString = aurora.Colorize(underlineString, aurora.RedFg|aurora.BrightFg).String()
		} else {
			underlineString = aurora.Colorize(underlineString, aurora.CyanFg|aurora.BrightFg).String()
		}
	}

	if err := p.writeString(underlineString); err != nil {
		return err
	}

	if excerpt.message != "" {
		message := excerpt.message
		if p.useColor {
			message = aurora.Bold(message).String()
		}
		if err := p.writeString(" "); err != nil {
			return err
		}
		if err := p.writeString(message); err != nil {
			return err
		}
	}

	return p.writeString("\n")
}

func colorizeGutter(gutter string) string {
	return aurora.Colorize(gutter, aurora.CyanFg|aurora.BrightFg|aurora.BoldFm).String()
}
