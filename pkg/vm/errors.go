// Package vm implements the NVM stack-based bytecode virtual machine:
// image validation, the process table, capability checks, the syscall
// dispatcher, the interpreter, and the round-robin scheduler.
//
// Instruction format
//
// Each instruction is a single opcode byte, optionally followed by a
// big-endian 32-bit immediate (PUSH, JMP, JZ, JNZ, CALL) or an 8-bit
// index (LOAD, STORE, SYSCALL). There is no section table, no
// relocation, and no symbol table: the instruction stream begins
// right after the 4-byte magic prefix and runs to the end of the
// image.
//
// Bytecode format
//
//	Bytes 0..3: magic "NVM0" (0x4E 0x56 0x4D 0x30).
//	Bytes 4..:  instruction stream.
package vm

import "errors"

// The following errors may be returned by the Process Table and Image
// Validator. They are surfaced directly to the caller; no process is
// created when one of these is returned.
var (
	// ErrBadMagic indicates that the image is missing the NVM0 magic
	// prefix, or is too short to contain one.
	ErrBadMagic = errors.New("vm: bad magic")

	// ErrNoFreeSlot indicates that the process table is full.
	ErrNoFreeSlot = errors.New("vm: no free process slot")

	// ErrNoSuchProcess indicates that a pid does not name a slot in
	// the process table's range.
	ErrNoSuchProcess = errors.New("vm: no such process")
)

// Fault is returned internally by the interpreter and syscall
// dispatcher to terminate the offending process with exit code -1.
// Faults never propagate across process boundaries; the scheduler
// only ever observes them via PCB.Active and PCB.ExitCode.
type Fault struct {
	Reason string
}

func (f *Fault) Error() string {
	return "vm: fault: " + f.Reason
}

func fault(reason string) error {
	return &Fault{Reason: reason}
}
