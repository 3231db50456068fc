/*
Package machine implements a postfix evaluation engine.

Words of a program are turned into Tokens by Recognizers, and each Token is
pushed onto a Stack in program order. Pushing is evaluation: operand values
ask to be stored as-is, while operator values immediately pop their operands
and push their result. There is no separate step phase; feeding a program's
tokens one at a time runs it.

New operand and operator kinds are added by implementing Value, and made
reachable from text by adding a Recognizer to a Registry. Operators retrieve
their operands with Cast or Peek, which never panic on a kind mismatch.
*/
package machine
