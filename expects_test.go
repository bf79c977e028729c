package main

// @generated from interp_test.go

//go:generate go run scripts/gen_expects.go -- interp_test.go expects_test.go

import (
	"time"

	"github.com/jcorbin/gotiny/internal/value"
)

func withInterpOptions(opts ...Option) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withOptions(opts...)
	}
}

func withInterpSource(lines ...string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withSource(lines...)
	}
}

func withInterpInput(input string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withInput(input)
	}
}

func withInterpStepLimit(limit int) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withStepLimit(limit)
	}
}

func withInterpTimeout(timeout time.Duration) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withTimeout(timeout)
	}
}

func expectInterpError(err error) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectError(err)
	}
}

func expectInterpErrorMessage(mess string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectErrorMessage(mess)
	}
}

func expectInterpCoercionError(index int, text string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectCoercionError(index, text)
	}
}

func expectInterpPC(pc int) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectPC(pc)
	}
}

func expectInterpSteps(steps int) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectSteps(steps)
	}
}

func expectInterpVar(name string, val value.Value) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectVar(name, val)
	}
}

func expectInterpNoVar(name string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectNoVar(name)
	}
}

func expectInterpOutput(output string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectOutput(output)
	}
}

func expectInterpDump(dump string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectDump(dump)
	}
}
