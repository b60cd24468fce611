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

// Package cpu emulates the MOS 6502 microprocessor, one tick at a time.
package cpu

import (
	"fmt"
	"strings"

	"sixfiveohtwo/bus"
)

const (
	// FlagCarry C
	FlagCarry uint8 = 0x01
	// FlagZero Z
	FlagZero uint8 = 0x02
	// FlagInterrupt I, the interrupt-disable bit
	FlagInterrupt uint8 = 0x04
	// FlagDecimal D, stored but never consulted by arithmetic
	FlagDecimal uint8 = 0x08
	// FlagBreak B
	FlagBreak uint8 = 0x10
	// FlagUnused U, conventionally always 1
	FlagUnused uint8 = 0x20
	// FlagOverflow V
	FlagOverflow uint8 = 0x40
	// FlagNegative N
	FlagNegative uint8 = 0x80
)

const (
	// AddrModeUnknown is the zero value; no real table entry uses it.
	AddrModeUnknown = iota
	AddrModeIMP
	AddrModeIMM
	AddrModeZP0
	AddrModeZPX
	AddrModeZPY
	AddrModeREL
	AddrModeABS
	AddrModeABX
	AddrModeABY
	AddrModeIND
	AddrModeIZX
	AddrModeIZY
)

// Instruction is one entry of the fixed 256-slot opcode table: a mnemonic,
// an operation, an addressing mode, and the base cycle cost before either
// may add one more.
type Instruction struct {
	name     string
	op       func(cpu *CPU) uint8
	am       func(cpu *CPU) uint8
	cycles   uint8
	addrMode int
}

// CPU holds the architectural registers and the scratch state of the 6502's
// per-tick instruction state machine. It never owns memory: Attach gives it
// mutable access to a Bus for the duration it is driven.
type CPU struct {
	// A accumulator
	A uint8
	// X index register
	X uint8
	// Y index register
	Y uint8
	// SP stack pointer, the low byte of an address in page 0x01
	SP uint8
	// PC program counter
	PC uint16
	// FLAG status register
	FLAG uint8

	bus *bus.Bus

	fetched    uint8  // operand byte the current operation will act on
	temp       uint16 // widened intermediate for carry/overflow math
	addrAbs    uint16 // effective address resolved by the addressing mode
	addrRel    uint16 // sign-extended branch displacement
	opcode     uint8  // opcode byte of the instruction in flight
	cycles     uint8  // cycles remaining until the instruction retires
	clockCount uint32 // informational, monotonically increasing

	lookup []Instruction
}

// New returns a CPU with all registers zero and no cycles pending. Call
// Attach before Reset; Reset is the only valid entry into running state.
func New() *CPU {
	return &CPU{
		lookup: newInstructionSet(),
	}
}

// Attach gives the CPU mutable access to b for subsequent ticks.
func (cpu *CPU) Attach(b *bus.Bus) {
	cpu.bus = b
}

// Reset forces the CPU into its power-up state: PC is loaded from the reset
// vector at 0xFFFC, registers are cleared, SP is set to 0xFD, and U is the
// only flag set. The first instruction does not begin for 8 cycles.
func (cpu *CPU) Reset() {
	cpu.PC = cpu.read16(0xFFFC)

	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.SP = 0xFD
	cpu.FLAG = FlagUnused

	cpu.addrRel = 0
	cpu.addrAbs = 0
	cpu.fetched = 0

	cpu.cycles = 8
}

// IRQ requests a maskable interrupt. Ignored while I is set; otherwise PC
// and status are pushed, B is cleared and I is set on the pushed copy, and
// PC is loaded from the IRQ/BRK vector at 0xFFFE.
func (cpu *CPU) IRQ() {
	if cpu.GetFlag(FlagInterrupt) != 0 {
		return
	}

	cpu.pushPC()

	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, true)
	cpu.SetFlag(FlagInterrupt, true)
	cpu.push(cpu.FLAG)

	cpu.PC = cpu.read16(0xFFFE)
	cpu.cycles = 7
}

// NMI requests a non-maskable interrupt. Never masked; otherwise identical
// to IRQ except PC is loaded from the NMI vector at 0xFFFA and the sequence
// takes 8 cycles rather than 7.
func (cpu *CPU) NMI() {
	cpu.pushPC()

	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, true)
	cpu.SetFlag(FlagInterrupt, true)
	cpu.push(cpu.FLAG)

	cpu.PC = cpu.read16(0xFFFA)
	cpu.cycles = 8
}

// Tick advances the master clock by one cycle. When no cycles remain from a
// prior instruction it fetches and dispatches the next opcode, charging its
// base cost plus one cycle when both the addressing mode and the operation
// agree a page-crossing penalty applies (taken-branch cycles are added by the
// branch operations themselves). Otherwise it just counts down the cycle
// already in progress.
func (cpu *CPU) Tick() {
	if cpu.cycles == 0 {
		cpu.opcode = cpu.read(cpu.PC)
		instr := cpu.lookup[cpu.opcode]
		logPC := cpu.PC

		cpu.SetFlag(FlagUnused, true)
		cpu.PC++
		cpu.cycles = instr.cycles

		extraMode := instr.am(cpu)
		extraOp := instr.op(cpu)
		cpu.cycles += extraMode & extraOp

		cpu.SetFlag(FlagUnused, true)

		if logEnable {
			logger.Log(cpu.traceLine(logPC, instr))
		}
	}

	cpu.clockCount++
	cpu.cycles--
}

func (cpu *CPU) traceLine(pc uint16, instr Instruction) string {
	const flagOrder = "NVUBDIZC"
	flagBits := []uint8{FlagNegative, FlagOverflow, FlagUnused, FlagBreak, FlagDecimal, FlagInterrupt, FlagZero, FlagCarry}

	sb := &strings.Builder{}
	for i, c := range flagOrder {
		if cpu.GetFlag(flagBits[i]) != 0 {
			sb.WriteRune(c)
		} else {
			sb.WriteRune('.')
		}
	}

	return fmt.Sprintf("%10d PC:%04X %-3s A:%02X X:%02X Y:%02X %s SP:%02X",
		cpu.clockCount, pc, instr.name, cpu.A, cpu.X, cpu.Y, sb.String(), cpu.SP)
}

// Complete reports whether the in-flight instruction has fully retired.
func (cpu *CPU) Complete() bool {
	return cpu.cycles == 0
}

// CyclesRemaining exposes the countdown toward the current instruction's
// completion, for host observation and tests.
func (cpu *CPU) CyclesRemaining() uint8 {
	return cpu.cycles
}

// ClockCount returns the number of ticks this CPU has processed.
func (cpu *CPU) ClockCount() uint32 {
	return cpu.clockCount
}

// GetFlag returns 1 if flag is set in FLAG, else 0.
func (cpu *CPU) GetFlag(flag uint8) uint8 {
	if cpu.FLAG&flag > 0 {
		return 1
	}
	return 0
}

// SetFlag sets or clears exactly the bit named by flag.
func (cpu *CPU) SetFlag(flag uint8, v bool) {
	if v {
		cpu.FLAG |= flag
	} else {
		cpu.FLAG &^= flag
	}
}

func (cpu *CPU) push(data uint8) {
	cpu.write(0x0100+uint16(cpu.SP), data)
	cpu.SP--
}

func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.read(0x0100 + uint16(cpu.SP))
}

func (cpu *CPU) pushPC() {
	cpu.write(0x0100+uint16(cpu.SP), uint8((cpu.PC>>8)&0x00FF))
	cpu.SP--
	cpu.write(0x0100+uint16(cpu.SP), uint8(cpu.PC&0x00FF))
	cpu.SP--
}

func (cpu *CPU) popPC() {
	cpu.SP++
	cpu.PC = cpu.read16(0x0100 + uint16(cpu.SP))
	cpu.SP++
}

func (cpu *CPU) read(addr uint16) uint8 {
	return cpu.bus.Read(addr, false)
}

func (cpu *CPU) read16(addr uint16) uint16 {
	lo := uint16(cpu.read(addr))
	hi := uint16(cpu.read(addr + 1))
	return hi<<8 | lo
}

func (cpu *CPU) write(addr uint16, data uint8) {
	cpu.bus.Write(addr, data)
}

// fetch loads the operand the current operation will act on into cpu.fetched,
// unless the addressing mode is implied (where amIMP already set it from A).
func (cpu *CPU) fetch() uint8 {
	if cpu.lookup[cpu.opcode].addrMode != AddrModeIMP {
		cpu.fetched = cpu.read(cpu.addrAbs)
	}
	return cpu.fetched
}
