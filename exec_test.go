package forth

import (
	"testing"
)

func Test_exec(t *testing.T) {
	interpTestCases{
		interpTest("if then true").
			do(": buzz? 5 mod 0 = if 1 then ;", "5 buzz?").
			expectStack(ints(1)...),
		interpTest("if then false").
			do(": buzz? 5 mod 0 = if 1 then ;", "3 buzz?", "4 buzz?").
			expectStack(),
		interpTest("if else then").
			do(": is-it-zero? 0 = if 1 else 0 then ;", "0 is-it-zero? 1 is-it-zero? 2 is-it-zero?").
			expectStack(ints(1, 0, 0)...),
		interpTest("if only minus one is true").
			do(": t? if 5 then ;", "1 t? -1 t?").
			expectStack(ints(5)...),
		interpTest("if else other integers are false").
			do(": t? if 5 else 6 then ;", "2 t? 0 t? -1 t?").
			expectStack(ints(6, 6, 5)...),
		interpTest("if string condition").
			do(`: truthy? if 1 else 0 then ;`, `"" truthy?`).
			expectStack(ints(1)...),
		interpTest("if pointer condition").withVar("v", nil).
			do(`: truthy? if 1 else 0 then ;`, `v truthy?`).
			expectError(ErrInvalidOperands),
		interpTest("if underflow").
			do(": maybe if 1 then ;", "maybe").
			expectError(ErrStackUnderflow),
		interpTest("do loop binds counter").
			do(": loop-test 10 0 do i loop ;", "loop-test").
			expectStack().
			expectVar("i", Integer(9)),
		interpTest("do loop body before counter").
			do("variable i", ": seen 4 0 do i i @ loop ;", "seen").
			expectStack(ints(0, 0, 1, 2)...).
			expectVar("i", Integer(3)),
		interpTest("do loop empty range").
			do(": none 0 0 do i 1 loop ;", "none").
			expectStack(),
		interpTest("do loop non integer").
			do(`: bad "a" 0 do i loop ;`, "bad").
			expectError(ErrInvalidOperands),
		interpTest("do loop underflow").
			do(": bad 1 do i loop ;", "bad").
			expectError(ErrStackUnderflow),
		interpTest("nested loops").
			do(": grid 2 0 do i 3 0 do j 1 loop loop ;", "grid").
			expectStack(ints(1, 1, 1, 1, 1, 1)...).
			expectVar("i", Integer(1)).
			expectVar("j", Integer(2)),
		interpTest("failure keeps completed iterations").
			do("variable n", ": count 5 0 do i 1 n +! n @ 3 = if oops then loop ;", "count").
			expectError(ErrUnknownIdentifier).
			expectVar("n", Integer(3)).
			expectVar("i", Integer(1)),
		interpTest("print string").
			do(`." hi there" 1`).
			expectOutput("hi there").
			expectStack(ints(1)...),
		interpTest("late binding").
			do(": inner 1 ;", ": outer inner inner + ;", ": inner 10 ;", "outer").
			expectStack(ints(20)...),
		interpTest("recursion").
			do(": countdown dup 0 > if dup 1 - countdown then ;", "3 countdown").
			expectStack(ints(3, 2, 1, 0)...),
		interpTest("runaway recursion").withMaxDepth(16).
			do(": forever forever ;", "forever").
			expectError(ErrCallDepth),
		interpTest("word error context").
			do(": inner drop ;", ": outer inner ;", "outer").
			expectError(ErrStackUnderflow),
		interpTest("redefine word").
			do(": foo 100 + ;", ": foo 200 + ;", "1 foo").
			expectStack(ints(201)...).
			expectWord("foo", ": foo 200 + ;"),
		interpTest("constant").
			do("42 constant answer", "2 answer *").
			expectStack(ints(84)...).
			expectConst("answer", Integer(42)),
		interpTest("redefine constant").
			do("1 constant x", `"one" constant x`, "x").
			expectStack(String("one")),
		interpTest("parse failure executes nothing").
			do("1 2 ( oops").
			expectErrorKind(ParseFailure).
			expectStack(),
		interpTest("out of range integer").
			do("1 99999999999999999999").
			expectErrorKind(ParseFailure).
			expectStack(),
		interpTest("stops at first failing line").
			do("1\n2 nope\n3").
			expectError(ErrUnknownIdentifier).
			expectStack(ints(1, 2)...),
		interpTest("word source").
			do(`: show ( n -- ) dup 0 < if ." neg" else ." pos" then cr 3 0 do k loop ;`).
			expectWord("show", `: show dup 0 < if ." neg" else ." pos" then cr 3 0 do k loop ;`),
		interpTest("print strings in words").
			do(`: greet ." Hello " . cr ;`, `"there" greet`).
			expectOutput("Hello there \n"),
	}.run(t)
}
