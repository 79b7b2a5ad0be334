package vm

import "github.com/google/uuid"

// Table sizing constants: the fixed architectural sizes named in the
// data model. internal/config does not override them; it tunes only
// the scheduler quantum.
const (
	// MaxProcesses is the fixed capacity of a ProcessTable.
	MaxProcesses = 8

	// StackSize is the number of 32-bit words in a process's data
	// stack.
	StackSize = 256

	// MaxLocals is the number of local variable slots per process.
	MaxLocals = 32

	// MaxCaps is the maximum number of capability codes a process may
	// carry.
	MaxCaps = 16
)

// PCB is a process control block: the full state of one process slot
// in a ProcessTable.
//
// The bytecode slice is borrowed, not owned: the caller that loaded
// the image must keep it alive, unmutated, for as long as any PCB
// referencing it may still run.
type PCB struct {
	Bytecode []byte // borrowed; immutable during execution
	Size     int32

	IP int32 // instruction pointer, byte offset; starts at 4
	SP int32 // stack pointer, index of next free slot

	Stack  [StackSize]int32
	Locals [MaxLocals]int32

	Caps      [MaxCaps]Cap
	CapsCount uint8

	Pid      uint8
	Active   bool
	Blocked  bool // reserved for future IPC; always false in this version
	ExitCode int32

	// TraceID correlates this process's log lines across a scheduler
	// run. It participates in no invariant and is read by no opcode.
	TraceID uuid.UUID
}

// ProcessTable is a fixed-capacity, ordered sequence of process
// control blocks indexed by pid. A slot is reused once its PCB's
// Active field is false.
type ProcessTable struct {
	slots [MaxProcesses]PCB
}

// NewProcessTable returns an empty process table; every slot starts
// inactive.
func NewProcessTable() *ProcessTable {
	return &ProcessTable{}
}

// Create validates image, then scans slots in ascending index order
// for the first inactive one, initializes it, and returns its index
// as a pid. It copies at most MaxCaps entries from caps; any beyond
// that are silently dropped.
func (t *ProcessTable) Create(image []byte, caps []Cap) (uint8, error) {
	if err := ValidateImage(image); err != nil {
		return 0, err
	}
	for i := range t.slots {
		pcb := &t.slots[i]
		if pcb.Active {
			continue
		}
		*pcb = PCB{}
		pcb.Bytecode = image
		pcb.Size = int32(len(image))
		pcb.IP = 4
		pcb.SP = 0
		pcb.ExitCode = 0
		pcb.Pid = uint8(i)
		pcb.Active = true
		pcb.TraceID = uuid.New()

		n := len(caps)
		if n > MaxCaps {
			n = MaxCaps
		}
		copy(pcb.Caps[:n], caps[:n])
		pcb.CapsCount = uint8(n)

		return pcb.Pid, nil
	}
	return 0, ErrNoFreeSlot
}

// Get returns the PCB at pid.
func (t *ProcessTable) Get(pid uint8) (*PCB, error) {
	if int(pid) >= len(t.slots) {
		return nil, ErrNoSuchProcess
	}
	return &t.slots[pid], nil
}

// IsActive reports whether pid names an active process. An
// out-of-range pid reports false rather than erroring.
func (t *ProcessTable) IsActive(pid uint8) bool {
	if int(pid) >= len(t.slots) {
		return false
	}
	return t.slots[pid].Active
}

// ExitCode returns the exit code of pid. It is only meaningful once
// the slot exists and is inactive; it returns -1 otherwise (including
// for a pid that is still active, or out of range).
func (t *ProcessTable) ExitCode(pid uint8) int32 {
	if int(pid) >= len(t.slots) || t.slots[pid].Active {
		return -1
	}
	return t.slots[pid].ExitCode
}

// ActivePids returns the pids of every currently active process, in
// ascending order, for the Scheduler to visit on a tick.
func (t *ProcessTable) ActivePids() []uint8 {
	var pids []uint8
	for i := range t.slots {
		if t.slots[i].Active {
			pids = append(pids, uint8(i))
		}
	}
	return pids
}
