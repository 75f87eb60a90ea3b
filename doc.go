/* Package forth implements an interpreter for a small Forth-like language,
along the lines of the one taught by the "Easy Forth" tutorial.

Source is line oriented: each line is either a definition or an expression.

	variable balance        ( define a variable )
	42 constant answer      ( define a constant )
	: double 2 * ;          ( define a word )
	123 balance ! balance @ double .

An expression is a run of literals and identifiers, executed left to right
against a data stack of values. Literals are integers like 42 or -7,
character literals like 'A' <ESC> or ^[, and strings like "hello". An
identifier names, in order of priority: a variable, which pushes a pointer to
it; a constant, which pushes its value; a native word; or a user defined
word, whose body is executed. Words are looked up by name each time they are
called, so redefining a word changes the behavior of every word that calls it.

Word bodies may also contain control statements:

	: buzz? 5 mod 0 = if 1 then ;
	: sign 0 < if -1 else 1 then ;
	: count 10 0 do i loop ;

Both forms of if pop their condition. A do loop pops a start index and then a
limit, executing its body once for each index in [start, limit); after each
pass the named counter variable (i above) is bound to the index.

Variables form a store addressed by Pointer values. The allot word replaces
the most recently defined variable's value with an array, whose cells are
addressed by adding an offset to a pointer:

	variable numbers
	3 cells allot
	10 numbers 2 cells + !
	numbers 2 cells + @

Every failure is returned as an error that may be classified with KindOf;
failures abort the remainder of the current line, without undoing any effects
that were already applied.
*/
package forth
