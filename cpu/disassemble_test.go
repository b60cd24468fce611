package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleImmediateLoad(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xA9, 0x14})

	d := c.Disassemble(0x8000, 0x8001)

	assert.Len(t, d.Index, 1)
	assert.Contains(t, d.Lines[0x8000], "LDA")
	assert.Contains(t, d.Lines[0x8000], "#$14")
	assert.Contains(t, d.Lines[0x8000], "{IMM}")
}

func TestDisassembleWindowCoversMultipleInstructions(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xA9, 0x05, 0x8D, 0x00, 0x02, 0x69, 0x03})

	d := c.Disassemble(0x8000, 0x8006)

	assert.Equal(t, []uint16{0x8000, 0x8002, 0x8005}, d.Index)
	assert.Contains(t, d.Lines[0x8002], "STA")
	assert.Contains(t, d.Lines[0x8002], "$0200")
	assert.Contains(t, d.Lines[0x8005], "ADC")
}

func TestDisassembleBranchShowsTarget(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xD0, 0xFD}) // BNE -3
	d := c.Disassemble(0x8000, 0x8001)
	line := d.Lines[0x8000]
	assert.True(t, strings.Contains(line, "BNE"))
	assert.Contains(t, line, "[$7FFF]")
}

func TestStringifyJoinsLinesInOrder(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xEA, 0xEA}) // NOP NOP
	d := c.Disassemble(0x8000, 0x8001)
	out := d.Stringify()
	assert.Equal(t, 2, strings.Count(out, "NOP"))
}
