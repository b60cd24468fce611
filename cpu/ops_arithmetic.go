// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cpu

// opADC adds the fetched operand and the carry flag into A in a 16-bit
// intermediate so the carry and signed-overflow outcomes can be read off
// specific bits before truncating back to 8. Decimal mode is architecturally
// present on real hardware but is never consulted here.
func opADC(cpu *CPU) uint8 {
	cpu.fetch()

	cpu.temp = uint16(cpu.A) + uint16(cpu.fetched) + uint16(cpu.GetFlag(FlagCarry))

	cpu.SetFlag(FlagCarry, cpu.temp > 255)
	cpu.SetFlag(FlagZero, (cpu.temp&0x00FF) == 0)

	overflow := (^(uint16(cpu.A) ^ uint16(cpu.fetched)) & (uint16(cpu.A) ^ cpu.temp)) & 0x0080
	cpu.SetFlag(FlagOverflow, overflow != 0)
	cpu.SetFlag(FlagNegative, cpu.temp&0x80 != 0)

	cpu.A = uint8(cpu.temp & 0x00FF)
	return 1
}

// opSBC subtracts the fetched operand (and the borrow) from A by adding its
// bitwise complement, reusing exactly the same carry/overflow arithmetic as
// opADC.
func opSBC(cpu *CPU) uint8 {
	cpu.fetch()

	value := uint16(cpu.fetched) ^ 0x00FF

	cpu.temp = uint16(cpu.A) + value + uint16(cpu.GetFlag(FlagCarry))
	cpu.SetFlag(FlagCarry, cpu.temp&0xFF00 != 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0)

	overflow := (cpu.temp ^ uint16(cpu.A)) & ((cpu.temp ^ value) & 0x0080)
	cpu.SetFlag(FlagOverflow, overflow != 0)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)

	cpu.A = uint8(cpu.temp & 0x00FF)
	return 1
}

// opCMP compares A against the fetched operand without storing a result.
func opCMP(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.A) - uint16(cpu.fetched)
	cpu.SetFlag(FlagCarry, cpu.A >= cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 1
}

// opCPX compares X against the fetched operand.
func opCPX(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.X) - uint16(cpu.fetched)
	cpu.SetFlag(FlagCarry, cpu.X >= cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}

// opCPY compares Y against the fetched operand.
func opCPY(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.Y) - uint16(cpu.fetched)
	cpu.SetFlag(FlagCarry, cpu.Y >= cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}
