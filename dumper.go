package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
)

type interpDumper struct {
	it  *Interp
	out io.Writer

	indexWidth int
}

func (dump interpDumper) dump() {
	fmt.Fprintf(dump.out, "# Interp Dump\n")
	fmt.Fprintf(dump.out, "  source: %v\n", dump.it.src.Name)
	fmt.Fprintf(dump.out, "  pc: %v\n", dump.it.pc)
	fmt.Fprintf(dump.out, "  steps: %v\n", dump.it.steps)
	dump.dumpProgram()
	dump.dumpVars()
}

func (dump *interpDumper) dumpProgram() {
	prog := dump.it.prog
	if prog == nil {
		fmt.Fprintf(dump.out, "# No Program\n")
		return
	}

	fmt.Fprintf(dump.out, "# Program\n")
	if dump.indexWidth == 0 {
		dump.indexWidth = len(strconv.Itoa(len(prog.Stmts)))
	}
	for i := 0; i <= len(prog.Stmts); i++ {
		for _, name := range prog.LabelsAt(i) {
			fmt.Fprintf(dump.out, "  %v:\n", name)
		}
		if i == len(prog.Stmts) {
			break
		}
		mark := " "
		if i == dump.it.pc {
			mark = ">"
		}
		fmt.Fprintf(dump.out, "%v @%*v %v\n", mark, dump.indexWidth, i, prog.Stmts[i])
	}
}

func (dump *interpDumper) dumpVars() {
	names := make([]string, 0, len(dump.it.vars))
	for name := range dump.it.vars {
		names = append(names, name)
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)

	fmt.Fprintf(dump.out, "# Variables\n")
	for _, name := range names {
		fmt.Fprintf(dump.out, "  %v = %#v\n", name, dump.it.vars[name])
	}
}
