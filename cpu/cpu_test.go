package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/bus"
)

func newTestSystem() (*CPU, *bus.Bus) {
	b := bus.New()
	c := New()
	c.Attach(b)
	return c, b
}

func tickUntilComplete(c *CPU) {
	c.Tick()
	for !c.Complete() {
		c.Tick()
	}
}

func TestResetState(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	c.Reset()

	assert.EqualValues(t, 0x8000, c.PC)
	assert.EqualValues(t, 0, c.A)
	assert.EqualValues(t, 0, c.X)
	assert.EqualValues(t, 0, c.Y)
	assert.EqualValues(t, 0xFD, c.SP)
	assert.EqualValues(t, 1, c.GetFlag(FlagUnused))
	assert.EqualValues(t, 8, c.CyclesRemaining())
}

func TestIRQIgnoredWhenInterruptDisabled(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	c.Reset()
	tickUntilComplete(c)
	c.SetFlag(FlagInterrupt, true)

	pcBefore := c.PC
	c.IRQ()
	assert.Equal(t, pcBefore, c.PC, "IRQ must be ignored while I is set")
}

func TestIRQPushesStateAndLoadsVector(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	b.Write(0xFFFE, 0x00)
	b.Write(0xFFFF, 0x90)
	c.Reset()
	tickUntilComplete(c)

	sp := c.SP
	c.IRQ()
	assert.EqualValues(t, 0x9000, c.PC)
	assert.EqualValues(t, 1, c.GetFlag(FlagInterrupt))
	assert.Equal(t, sp-3, c.SP)
}

func TestNMIAlwaysFires(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	b.Write(0xFFFA, 0x00)
	b.Write(0xFFFB, 0xA0)
	c.Reset()
	tickUntilComplete(c)
	c.SetFlag(FlagInterrupt, true)

	c.NMI()
	assert.EqualValues(t, 0xA000, c.PC, "NMI must fire even with I set")
}

func TestUnusedFlagAlwaysSet(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	b.LoadImage(0x8000, []byte{0xA9, 0x00}) // LDA #$00
	c.Reset()
	tickUntilComplete(c)
	assert.EqualValues(t, 1, c.GetFlag(FlagUnused))
}

func TestScenarioImmediateLoad(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xA9, 0x14}) // LDA #$14
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	c.Reset()
	tickUntilComplete(c) // drain the 8-cycle reset delay
	tickUntilComplete(c)

	assert.EqualValues(t, 0x14, c.A)
	assert.EqualValues(t, 0, c.GetFlag(FlagZero))
	assert.EqualValues(t, 0, c.GetFlag(FlagNegative))
}

func TestScenarioLoadStoreAdd(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xA9, 0x05, 0x8D, 0x00, 0x02, 0x69, 0x03})
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	c.Reset()
	tickUntilComplete(c) // drain the 8-cycle reset delay

	tickUntilComplete(c) // LDA #$05
	tickUntilComplete(c) // STA $0200
	tickUntilComplete(c) // ADC #$03

	assert.EqualValues(t, 0x08, c.A)
	assert.EqualValues(t, 0x05, b.Read(0x0200, true))
	assert.EqualValues(t, 0, c.GetFlag(FlagCarry))
	assert.EqualValues(t, 0, c.GetFlag(FlagZero))
	assert.EqualValues(t, 0, c.GetFlag(FlagOverflow))
	assert.EqualValues(t, 0, c.GetFlag(FlagNegative))
}

func TestScenarioLoopWithDecrement(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xA2, 0x03, 0xCA, 0xD0, 0xFD, 0x00}) // LDX #$03; loop: DEX; BNE loop; BRK
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	b.Write(0xFFFE, 0x00)
	b.Write(0xFFFF, 0x90)
	c.Reset()
	tickUntilComplete(c) // drain the 8-cycle reset delay

	instructions := 0
	for c.PC != 0x9000 {
		tickUntilComplete(c)
		instructions++
	}

	assert.EqualValues(t, 0, c.X)
	assert.EqualValues(t, 1, c.GetFlag(FlagZero))
	assert.Equal(t, 8, instructions) // 1 LDX + 3 DEX + 3 BNE + 1 BRK
}

func TestScenarioStackRoundTrip(t *testing.T) {
	c, b := newTestSystem()
	b.LoadImage(0x8000, []byte{0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68}) // LDA #$42; PHA; LDA #$00; PLA
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	c.Reset()
	spBefore := c.SP
	tickUntilComplete(c) // drain the 8-cycle reset delay

	for i := 0; i < 4; i++ {
		tickUntilComplete(c)
	}

	assert.EqualValues(t, 0x42, c.A)
	assert.Equal(t, spBefore, c.SP)
}

func TestScenarioIndirectJMPBug(t *testing.T) {
	c, b := newTestSystem()
	b.Write(0x10FF, 0x34)
	b.Write(0x1000, 0x12)
	b.Write(0x1100, 0xCD)
	b.LoadImage(0x8000, []byte{0x6C, 0xFF, 0x10}) // JMP ($10FF)
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)
	c.Reset()
	tickUntilComplete(c) // drain the 8-cycle reset delay
	tickUntilComplete(c)

	assert.EqualValues(t, 0x1234, c.PC)
}

func TestScenarioPageCrossingABXPenalty(t *testing.T) {
	b := bus.New()
	b.Write(0x00FF, 0x01)
	b.Write(0x0100, 0x02)
	b.LoadImage(0x8000, []byte{0xBD, 0xFF, 0x00}) // LDA $00FF,X
	b.Write(0xFFFC, 0x00)
	b.Write(0xFFFD, 0x80)

	noCross := New()
	noCross.Attach(b)
	noCross.Reset()
	tickUntilComplete(noCross) // drain the 8-cycle reset delay
	noCross.Tick()
	cycles := 1
	for !noCross.Complete() {
		noCross.Tick()
		cycles++
	}
	assert.Equal(t, 4, cycles)

	cross := New()
	cross.Attach(b)
	cross.Reset()
	tickUntilComplete(cross) // drain the 8-cycle reset delay
	cross.X = 1
	cross.Tick()
	cycles = 1
	for !cross.Complete() {
		cross.Tick()
		cycles++
	}
	assert.Equal(t, 5, cycles)
}
