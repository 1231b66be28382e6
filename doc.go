// Package calc implements an exact arithmetic calculator.
//
// Expressions use the four operators + - * /, parentheses, and numbers
// written like 12, -3, 0.25, or .5. Whitespace is ignored entirely, so
// "1 2" is the number 12. A + or - directly after the start of the input,
// an open parenthesis, *, or / is a sign belonging to the number that follows
// it; "2*-3" is -6, but "2--3" is an error.
//
// Integers are arbitrary-precision and stay exact under +, - and *. Numbers
// written with a decimal point are exact decimals, and any operation touching
// one is done in decimal, as is every division. Decimal results are rounded
// half to even to a configurable number of significant digits. The final
// result is an integer when it has no fractional part and a float otherwise:
// "10 / 2" is the integer 5, and "7/2" is the float 3.5.
//
// Evaluation runs in three stages which are each exported: Tokenize scans a
// string into tokens, ToPostfix reorders them into reverse Polish notation,
// and Context.EvalPostfix runs the postfix program on a value stack.
package calc
