package j1cpu

import (
	_ "embed"
	"fmt"
	"strings"
)

// defaultImage is the J1E boot image compiled into the binary. The
// retrieval pack this emulator was built from carried no authentic
// j1e.bin resource (only source and build files survive filtering), so
// this placeholder reproduces only the documented eight-word header —
// it is not a working Forth system. A real j1e.bin can always be
// supplied at runtime via the --bin flag.
//
//go:embed assets/j1e.bin
var defaultImage []byte

// DefaultImage returns the embedded boot image.
func DefaultImage() []byte {
	out := make([]byte, len(defaultImage))
	copy(out, defaultImage)
	return out
}

// LoadDefaultImage loads the embedded boot image into the CPU.
func (c *CPU) LoadDefaultImage() error {
	return c.LoadBytes(DefaultImage())
}

// DumpASM renders an address-ordered assembly listing of memory over
// [start, end] inclusive, stepping by 2 bytes (one word) at a time,
// with a header row.
func (c *CPU) DumpASM(start, end uint16) string {
	return c.dump(start, end, func(ins Instruction) string {
		return ins.String()
	})
}

// DumpAST renders the same address range as DumpASM but with the
// verbose AST-like rendering of each instruction.
func (c *CPU) DumpAST(start, end uint16) string {
	return c.dump(start, end, func(ins Instruction) string {
		return ins.displayAST()
	})
}

func (c *CPU) dump(start, end uint16, render func(Instruction) string) string {
	var b strings.Builder
	b.WriteString("Address,Value,Instruction\n")
	for addr := start; addr <= end; addr += 2 {
		word := c.memory[addr>>1]
		ins := Decode(word)
		fmt.Fprintf(&b, "0x%04X,0x%04X,%s\n", addr, word, render(ins))
		if addr == 0xFFFE {
			break // avoid wrapping past the 16-bit address space
		}
	}
	return b.String()
}

// displayAST is the verbose, field-by-field rendering used by the
// --ast dump mode — every decoded field named explicitly rather than
// folded into a terse mnemonic.
func (ins Instruction) displayAST() string {
	switch ins.Kind {
	case KindLiteral:
		return fmt.Sprintf("Literal{value: 0x%04X}", ins.Literal)
	case KindJump:
		return fmt.Sprintf("Jump{target: 0x%04X}", ins.Target)
	case KindConditional:
		return fmt.Sprintf("Conditional{target: 0x%04X}", ins.Target)
	case KindCall:
		return fmt.Sprintf("Call{target: 0x%04X}", ins.Target)
	default:
		a := ins.ALU
		return fmt.Sprintf(
			"ALU{opcode: %s, r2pc: %t, t2n: %t, t2r: %t, n2_at_t: %t, r_dir: %d, d_dir: %d}",
			a.Op, a.ToPC, a.ToN, a.ToR, a.NToAtT, a.RDelta, a.DDelta,
		)
	}
}
