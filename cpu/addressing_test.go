package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmZP0WrapsIntoZeroPage(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0x0000, 0x42)
	c.PC = 0x0000
	amZP0(c)
	assert.EqualValues(t, 0x0042, c.addrAbs)
	assert.EqualValues(t, 0x0001, c.PC)
}

func TestAmZPXWraps(t *testing.T) {
	c, _ := newTestSystem()
	c.bus.Write(0x0000, 0xFF)
	c.X = 0x02
	c.PC = 0x0000
	amZPX(c)
	assert.EqualValues(t, 0x0001, c.addrAbs, "0xFF + 2 must wrap within the zero page")
}

func TestAmABXChargesExtraCycleOnPageCross(t *testing.T) {
	c, _ := newTestSystem()
	c.bus.Write(0x0000, 0xFF)
	c.bus.Write(0x0001, 0x00)
	c.X = 0x01
	c.PC = 0x0000
	extra := amABX(c)
	assert.EqualValues(t, 0x0100, c.addrAbs)
	assert.EqualValues(t, 1, extra)
}

func TestAmABXNoExtraCycleSamePage(t *testing.T) {
	c, _ := newTestSystem()
	c.bus.Write(0x0000, 0x00)
	c.bus.Write(0x0001, 0x01)
	c.X = 0x01
	c.PC = 0x0000
	extra := amABX(c)
	assert.EqualValues(t, 0x0101, c.addrAbs)
	assert.EqualValues(t, 0, extra)
}

func TestAmABYResolvesFreshAddress(t *testing.T) {
	c, _ := newTestSystem()
	c.bus.Write(0x0000, 0x00)
	c.bus.Write(0x0001, 0x01)
	c.Y = 0x05
	c.PC = 0x0000
	c.addrAbs = 0xBEEF // stale value from a previous instruction
	amABY(c)
	assert.EqualValues(t, 0x0105, c.addrAbs, "addrAbs must be derived from the freshly read address, not the prior one")
}

func TestAmINDHardwareBug(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0x10FF, 0x34)
	b.Write(0x1000, 0x12)
	b.Write(0x1100, 0xCD)
	c.bus.Write(0x0000, 0xFF)
	c.bus.Write(0x0001, 0x10)
	c.PC = 0x0000
	amIND(c)
	assert.EqualValues(t, 0x1234, c.addrAbs, "low byte 0xFF must wrap the high-byte fetch within the same page")
}

func TestAmINDNoWrap(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0x2000, 0x34)
	b.Write(0x2001, 0x12)
	c.bus.Write(0x0000, 0x00)
	c.bus.Write(0x0001, 0x20)
	c.PC = 0x0000
	amIND(c)
	assert.EqualValues(t, 0x1234, c.addrAbs)
}

func TestAmIZXIndexesBeforeDereferencing(t *testing.T) {
	c, b := newTestSystem()
	c.bus.Write(0x0000, 0x02)
	c.X = 0x04
	b.Write(0x0006, 0x00)
	b.Write(0x0007, 0x30)
	c.PC = 0x0000
	amIZX(c)
	assert.EqualValues(t, 0x3000, c.addrAbs)
}

func TestAmIZYIndexesAfterDereferencing(t *testing.T) {
	c, b := newTestSystem()
	c.bus.Write(0x0000, 0x02)
	b.Write(0x0002, 0x00)
	b.Write(0x0003, 0x30)
	c.Y = 0x05
	c.PC = 0x0000
	extra := amIZY(c)
	assert.EqualValues(t, 0x3005, c.addrAbs)
	assert.EqualValues(t, 0, extra)
}

func TestAmIZYChargesExtraCycleOnPageCross(t *testing.T) {
	c, b := newTestSystem()
	c.bus.Write(0x0000, 0x02)
	b.Write(0x0002, 0xFF)
	b.Write(0x0003, 0x30)
	c.Y = 0x01
	c.PC = 0x0000
	extra := amIZY(c)
	assert.EqualValues(t, 0x3100, c.addrAbs)
	assert.EqualValues(t, 1, extra)
}

func TestAmRELSignExtends(t *testing.T) {
	c, _ := newTestSystem()
	c.bus.Write(0x0000, 0xFD) // -3
	c.PC = 0x0000
	amREL(c)
	assert.EqualValues(t, 0xFFFD, c.addrRel)
}

func TestAmIMPFetchesAccumulator(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x77
	amIMP(c)
	assert.EqualValues(t, 0x77, c.fetched)
}
