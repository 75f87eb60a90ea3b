package forth

// @generated from interp_test.go

//go:generate go run scripts/gen_expects.go -- interp_test.go interp_expects_test.go

func withInterpOptions(opts ...Option) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withOptions(opts...)
	}
}

func withInterpStack(values ...Literal) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withStack(values...)
	}
}

func withInterpVar(name string, value Literal) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withVar(name, value)
	}
}

func withInterpInput(input string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withInput(input)
	}
}

func withInterpNamedSource(name string, source string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withNamedSource(name, source)
	}
}

func withInterpMemLimit(limit int) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withMemLimit(limit)
	}
}

func withInterpMaxDepth(depth int) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.withMaxDepth(depth)
	}
}

func expectInterpError(err error) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectError(err)
	}
}

func expectInterpErrorKind(kind ErrorKind) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectErrorKind(kind)
	}
}

func expectInterpStack(values ...Literal) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectStack(values...)
	}
}

func expectInterpVar(name string, value Literal) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectVar(name, value)
	}
}

func expectInterpArray(name string, values ...Literal) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectArray(name, values...)
	}
}

func expectInterpConst(name string, value Literal) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectConst(name, value)
	}
}

func expectInterpWord(name string, source string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectWord(name, source)
	}
}

func expectInterpOutput(output string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectOutput(output)
	}
}

func expectInterpDump(dump string) func(interpTestCase) interpTestCase {
	return func(it interpTestCase) interpTestCase {
		return it.expectDump(dump)
	}
}
