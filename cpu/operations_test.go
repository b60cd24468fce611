package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

// impOpcode is any table slot using implied addressing, so that calling an
// operation directly against a pre-set cpu.fetched does not have fetch()
// clobber it by reading through addrAbs.
const impOpcode = 0x0A // ASL, implied

func withFetched(c *CPU, v uint8) {
	c.opcode = impOpcode
	c.fetched = v
}

func TestADCCarryAndOverflowProperty(t *testing.T) {
	cases := []struct {
		a, m, carry uint8
	}{
		{0x50, 0x50, 0}, // signed overflow, positive + positive = negative
		{0xFF, 0x01, 0}, // unsigned carry, no signed overflow
		{0x7F, 0x00, 1}, // carry in tips it into overflow
		{0x00, 0x00, 0},
	}

	for _, tc := range cases {
		c, _ := newTestSystem()
		c.A = tc.a
		c.SetFlag(FlagCarry, tc.carry != 0)
		withFetched(c, tc.m)

		opADC(c)

		wantResult := uint8((uint16(tc.a) + uint16(tc.m) + uint16(tc.carry)) & 0xFF)
		wantCarry := uint16(tc.a)+uint16(tc.m)+uint16(tc.carry) > 255
		wantOverflow := ((uint16(tc.a)^wantResult16(tc.a, tc.m, tc.carry))&(uint16(tc.m)^wantResult16(tc.a, tc.m, tc.carry)))&0x80 != 0

		if c.A != wantResult {
			t.Errorf("ADC(%#x,%#x,%d): A = %#x, want %#x\n%s", tc.a, tc.m, tc.carry, c.A, wantResult, spew.Sdump(c))
		}
		assert.Equal(t, wantCarry, c.GetFlag(FlagCarry) == 1)
		assert.Equal(t, wantOverflow, c.GetFlag(FlagOverflow) == 1)
	}
}

func wantResult16(a, m, carry uint8) uint16 {
	return (uint16(a) + uint16(m) + uint16(carry)) & 0xFF
}

func TestSBCIsADCOfTheComplement(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x10
	c.SetFlag(FlagCarry, true) // no borrow
	withFetched(c, 0x05)

	opSBC(c)

	assert.EqualValues(t, 0x0B, c.A)
	assert.EqualValues(t, 1, c.GetFlag(FlagCarry), "carry set means no borrow occurred")
}

func TestCMPSetsCarryWhenAGreaterOrEqual(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x10
	withFetched(c, 0x10)
	opCMP(c)
	assert.EqualValues(t, 1, c.GetFlag(FlagCarry))
	assert.EqualValues(t, 1, c.GetFlag(FlagZero))
}

func TestCMPClearsCarryWhenALess(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x01
	withFetched(c, 0x10)
	opCMP(c)
	assert.EqualValues(t, 0, c.GetFlag(FlagCarry))
}

func TestANDFlagDerivation(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0xF0
	withFetched(c, 0x80)
	opAND(c)
	assert.EqualValues(t, 0x80, c.A)
	assert.EqualValues(t, 0, c.GetFlag(FlagZero))
	assert.EqualValues(t, 1, c.GetFlag(FlagNegative))
}

func TestORAZeroFlag(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x00
	withFetched(c, 0x00)
	opORA(c)
	assert.EqualValues(t, 1, c.GetFlag(FlagZero))
}

func TestROLCanonicalFormula(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x80
	c.opcode = impOpcode
	amIMP(c)
	c.SetFlag(FlagCarry, true)
	opROL(c)
	assert.EqualValues(t, 0x01, c.A, "0x80 rotated left with carry-in 1 must become 0x01")
	assert.EqualValues(t, 1, c.GetFlag(FlagCarry), "bit 7 shifted out becomes the new carry")
}

func TestRORCanonicalFormula(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x01
	c.opcode = impOpcode
	amIMP(c)
	c.SetFlag(FlagCarry, true)
	opROR(c)
	assert.EqualValues(t, 0x80, c.A, "0x01 rotated right with carry-in 1 must become 0x80")
	assert.EqualValues(t, 1, c.GetFlag(FlagCarry), "bit 0 shifted out becomes the new carry")
}

func TestASLShiftsAndCapturesCarry(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x81
	c.opcode = impOpcode
	amIMP(c)
	opASL(c)
	assert.EqualValues(t, 0x02, c.A)
	assert.EqualValues(t, 1, c.GetFlag(FlagCarry))
}

func TestLSRShiftsAndCapturesCarry(t *testing.T) {
	c, _ := newTestSystem()
	c.A = 0x01
	c.opcode = impOpcode
	amIMP(c)
	opLSR(c)
	assert.EqualValues(t, 0x00, c.A)
	assert.EqualValues(t, 1, c.GetFlag(FlagCarry))
	assert.EqualValues(t, 1, c.GetFlag(FlagZero))
}

func TestBranchCycleAccounting(t *testing.T) {
	c, _ := newTestSystem()
	c.PC = 0x8000
	c.addrRel = 0x0005
	c.cycles = 0
	c.branch()
	assert.Equal(t, uint8(1), c.cycles, "same-page branch adds exactly one cycle")

	c2, _ := newTestSystem()
	c2.PC = 0x80FE
	c2.addrRel = 0x0005
	c2.cycles = 0
	c2.branch()
	assert.Equal(t, uint8(2), c2.cycles, "page-crossing branch adds a second cycle")
}

func TestBITTestsMaskWithoutStoring(t *testing.T) {
	c, b := newTestSystem()
	c.A = 0x0F
	b.Write(0x0010, 0xC0) // N and V set in the tested byte
	c.addrAbs = 0x0010
	c.opcode = 0x24 // BIT ZP0
	opBIT(c)
	assert.EqualValues(t, 0x0F, c.A, "BIT must never alter A")
	assert.EqualValues(t, 1, c.GetFlag(FlagZero), "0x0F & 0xC0 == 0")
	assert.EqualValues(t, 1, c.GetFlag(FlagNegative))
	assert.EqualValues(t, 1, c.GetFlag(FlagOverflow))
}
