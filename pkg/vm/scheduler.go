package vm

// DefaultQuantum is the number of instructions a process receives per
// scheduler tick. The quantum is an instruction count, not a
// real-time budget: nothing in this VM has access to a clock source.
const DefaultQuantum = 10

// Scheduler drives the Interpreter across a ProcessTable in
// round-robin fashion. It is the sole mutator of which process is
// "current"; the Interpreter is the sole mutator of the selected
// PCB's stack, ip, locals, and exit/active fields, and the syscall
// dispatcher may mutate the same PCB during SYSCALL execution.
type Scheduler struct {
	Table   *ProcessTable
	Interp  *Interpreter
	Quantum int
}

// NewScheduler returns a scheduler over table, driving interp with
// the given quantum. A quantum <= 0 uses DefaultQuantum.
func NewScheduler(table *ProcessTable, interp *Interpreter, quantum int) *Scheduler {
	if quantum <= 0 {
		quantum = DefaultQuantum
	}
	return &Scheduler{Table: table, Interp: interp, Quantum: quantum}
}

// RunAll executes pid to completion in a tight loop. This is the
// single-process convenience the batch entry point uses.
func (s *Scheduler) RunAll(pid uint8) error {
	pcb, err := s.Table.Get(pid)
	if err != nil {
		return err
	}
	for pcb.Active {
		if s.Interp.Step(pcb) == StepStop {
			break
		}
	}
	return nil
}

// Tick visits every active slot in ascending pid order and executes
// up to Quantum instructions for each. A process that terminates
// mid-quantum is simply skipped for the remainder of its slice; a
// process that was inactive at the start of the tick is skipped
// entirely. Tick returns once every slot that was active at its start
// has had its turn.
func (s *Scheduler) Tick() {
	for _, pid := range s.Table.ActivePids() {
		pcb, err := s.Table.Get(pid)
		if err != nil {
			continue
		}
		for i := 0; i < s.Quantum && pcb.Active; i++ {
			if s.Interp.Step(pcb) == StepStop {
				break
			}
		}
	}
}

// RunUntilAllDone repeatedly ticks the scheduler until every process
// in the table is inactive. It is a convenience for multi-process
// batch runs, layered on top of Tick without changing its round-robin
// contract; the CLI loads a single image and uses RunAll instead.
func (s *Scheduler) RunUntilAllDone() {
	for len(s.Table.ActivePids()) > 0 {
		s.Tick()
	}
}
