package vm

import "testing"

func TestSchedulerTickRoundRobinsActiveSlots(t *testing.T) {
	// Each process spins in a one-instruction JMP loop; none halts
	// within one quantum, so a tick should advance all of them by
	// Quantum instructions without favoring one pid over another.
	loopImage := func() []byte {
		image := append([]byte{}, Magic[:]...)
		// JMP 4: infinite loop, one instruction (5 bytes) per iteration
		image = append(image, OpJmp)
		image = be32(image, 4)
		return image
	}

	table := NewProcessTable()
	var pids []uint8
	for i := 0; i < 3; i++ {
		pid, err := table.Create(loopImage(), nil)
		if err != nil {
			t.Fatal(err)
		}
		pids = append(pids, pid)
	}

	interp := NewInterpreter(nil, NewHostMemory(), nil)
	sched := NewScheduler(table, interp, 7)
	sched.Tick()

	for _, pid := range pids {
		pcb, _ := table.Get(pid)
		if !pcb.Active {
			t.Errorf("pid %d: expected still active after one tick", pid)
		}
		// Each JMP is a single instruction; after Quantum instructions
		// the ip is always back at 4 (the loop target), since every
		// instruction in the loop is the same JMP.
		if pcb.IP != 4 {
			t.Errorf("pid %d: ip = %d, want 4", pid, pcb.IP)
		}
	}
}

func TestSchedulerTickSkipsInactiveSlots(t *testing.T) {
	table := NewProcessTable()
	haltImage := validImage(OpHalt)
	pid, err := table.Create(haltImage, nil)
	if err != nil {
		t.Fatal(err)
	}

	interp := NewInterpreter(nil, NewHostMemory(), nil)
	sched := NewScheduler(table, interp, DefaultQuantum)
	sched.Tick() // halts immediately

	pcb, _ := table.Get(pid)
	if pcb.Active {
		t.Fatal("expected process to have halted")
	}

	// A second tick must not touch the now-inactive slot's state.
	ip, sp, exitCode := pcb.IP, pcb.SP, pcb.ExitCode
	sched.Tick()
	if pcb.IP != ip || pcb.SP != sp || pcb.ExitCode != exitCode {
		t.Error("tick mutated an inactive process's state")
	}
}

func TestSchedulerRunAllRunsToCompletion(t *testing.T) {
	table := NewProcessTable()
	image := append([]byte{}, Magic[:]...)
	image = push(image, 3)
	image = append(image, OpSyscall, SyscallExit)
	pid, err := table.Create(image, nil)
	if err != nil {
		t.Fatal(err)
	}

	interp := NewInterpreter(nil, NewHostMemory(), nil)
	sched := NewScheduler(table, interp, DefaultQuantum)
	if err := sched.RunAll(pid); err != nil {
		t.Fatal(err)
	}

	if table.IsActive(pid) {
		t.Fatal("expected process to be inactive after RunAll")
	}
	if table.ExitCode(pid) != 3 {
		t.Errorf("exit code = %d, want 3", table.ExitCode(pid))
	}
}

func TestSchedulerRunAllUnknownPid(t *testing.T) {
	table := NewProcessTable()
	interp := NewInterpreter(nil, NewHostMemory(), nil)
	sched := NewScheduler(table, interp, DefaultQuantum)
	if err := sched.RunAll(MaxProcesses); err != ErrNoSuchProcess {
		t.Errorf("err = %v, want ErrNoSuchProcess", err)
	}
}
