/* Package main: gotiny -- a tiny line oriented BASIC

gotiny runs programs written in a very small BASIC-like language. There are no
line numbers, no loops, and no subroutines: control flow is nothing more than
labels, an unconditional goto, and a conditional "if ... then label". That is
still enough to write counting loops, read until a sentinel, and so on.

Section 1: Values

Every value is either a number (a 32-bit float) or text. Variables need no
declaration; one that was never assigned reads as the number 0. Numbers print
in their shortest form, so 1 prints as "1" and 1/2 as "0.5"; dividing by zero
gives "inf".

Section 2: Statements

	name = expr          assign
	label:               define a label at the next statement
	goto label           jump
	if expr then label   jump if expr is non-zero
	print expr           write expr followed by a newline
	input name           read one line into name

Statements may share a line, or span several; newlines only separate tokens.
A ' starts a comment that runs to the end of its line. Labels may be
referenced before they are defined; a jump to a label that is never defined
does nothing, and execution continues with the next statement. Defining the
same label twice keeps the later one.

Section 3: Expressions

Expressions are literals, variable names, and parenthesized expressions joined
by binary operators: + - * / = < >. There is no precedence; operators apply
strictly left to right, so "2 + 3 * 4" is 20. Comparisons produce 1 or 0.

The left operand decides what =, + < and > mean: if it is text, the right
operand is converted to text and the text is concatenated or compared; if it
is a number, the right operand must convert to a number. The remaining
operators always work on numbers. So "5" + 10 is "510" while 10 + "5" is 15.

Text that does not read as a number, like "abc", cannot be used where a number
is required; doing so stops the program with an error naming the statement.

Section 4: Input

input reads one line, without its line ending. If the line reads as a number
the variable gets that number, otherwise it gets the text. At the end of input
the variable gets empty text and the program carries on.

Section 5: Running

	gotiny [-trace] [-dump] [-timeout d] [-max-steps n] [-prompt p] [FILE|-]

With no FILE, or "-", the program itself is read from standard input and
input statements will find nothing further to read. When standard input is a
terminal, input shows a prompt and keeps a line history. See main.go for the
command, and api.go for running programs from Go.
*/
package main
