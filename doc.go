/* Command gostack: a postfix stack calculator

A program is a sequence of whitespace separated words. Each word is
recognized as a token and pushed onto the stack in order:

	4 5 +     leaves 9
	20 5 /    leaves 4
	4 5 -     leaves -1
	3 pop     leaves nothing

Integer literals are unsigned runs of decimal digits; negative values only
arise from arithmetic. Division truncates toward zero, and dividing by zero is
an error. Operators that find too few operands fail, leaving the stack as it
was after whatever pops already happened.

Files are evaluated with "gostack run FILE...", each on its own stack, and the
final stack is printed. Without arguments, gostack starts a line editing
REPL that prints the stack after every line.

Settings may be kept in $HOME/.gostack.toml:

	[repl]
	prompt = ">>> "
	history = "~/.gostack_history"

	[run]
	debug = false
	on_unknown = "abort"
	jobs = 1

	[output]
	color = "auto"

Flags given on the command line take precedence.

The evaluation engine lives in package machine, and the integer vocabulary in
package arith; see those for adding new kinds of words.
*/
package main
