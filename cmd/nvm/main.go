// Command nvm is the batch entry point: it loads a bytecode image,
// validates it, and runs it to completion under the single-process
// scheduler convenience.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/n0vm/nvm/internal/config"
	"github.com/n0vm/nvm/internal/vmlog"
	"github.com/n0vm/nvm/pkg/vm"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: nvm [--log file|stdio|no] [--config path] [--tty addr] <bytecode_file>")
}

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs()))
}

// run is the testable body of main: it takes the OS args (minus
// argv[0]) and a filesystem, and returns the process exit code: 0 on
// success, 1 on an argument, I/O, or validation failure. The exit
// code of the VM process itself is logged, not propagated to the
// shell.
func run(args []string, fs afero.Fs) int {
	logOutput := vmlog.OutputFile
	logFilename := "nvm.log"
	configPath := ""
	ttyAddr := ""
	var bytecodeFile string

	i := 0
	for i < len(args) {
		switch args[i] {
		case "--log":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --log requires an argument")
				return 1
			}
			switch args[i+1] {
			case "file":
				logOutput = vmlog.OutputFile
			case "stdio":
				logOutput = vmlog.OutputStdio
			case "no":
				logOutput = vmlog.OutputNone
			default:
				fmt.Fprintf(os.Stderr, "error: invalid --log argument: %s\n", args[i+1])
				return 1
			}
			i += 2
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --config requires an argument")
				return 1
			}
			configPath = args[i+1]
			i += 2
		case "--tty":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --tty requires an argument")
				return 1
			}
			ttyAddr = args[i+1]
			i += 2
		default:
			if bytecodeFile != "" {
				fmt.Fprintln(os.Stderr, "error: multiple bytecode files specified")
				return 1
			}
			bytecodeFile = args[i]
			i++
		}
	}

	if bytecodeFile == "" {
		usage()
		return 1
	}

	var logDest io.Writer
	switch logOutput {
	case vmlog.OutputFile:
		f, err := fs.OpenFile(logFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: cannot open log file: %s\n", err)
			return 1
		}
		defer f.Close()
		logDest = f
	case vmlog.OutputStdio:
		logDest = os.Stdout
	}
	logger := vmlog.New(logOutput, logrus.TraceLevel, logDest)

	cfg := config.Default()
	if configPath != "" {
		f, err := fs.Open(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: cannot open config file: %s\n", err)
			return 1
		}
		loaded, err := config.Load(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			return 1
		}
		cfg = loaded
	}

	image, err := afero.ReadFile(fs, bytecodeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot open file '%s': %s\n", bytecodeFile, err)
		return 1
	}
	if len(image) < 4 {
		fmt.Fprintln(os.Stderr, "error: file too small to contain NVM bytecode")
		return 1
	}

	var console vm.ConsoleSink = vm.StdoutConsole{}
	if ttyAddr != "" {
		nc, err := vm.DialNetConsole(ttyAddr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: cannot attach console at %s: %s\n", ttyAddr, err)
			return 1
		}
		defer nc.Close()
		console = nc
	}

	table := vm.NewProcessTable()
	pid, err := table.Create(image, []vm.Cap{vm.CapNone})
	if err != nil {
		logger.Errorf("failed to create process: %s", err)
		return 1
	}
	logger.Infof("NVM process started with PID: %d", pid)

	pcb, _ := table.Get(pid)
	interp := vm.NewInterpreter(console, vm.NewHostMemory(), vmlog.Logger{L: logger, TraceID: pcb.TraceID.String()})
	sched := vm.NewScheduler(table, interp, cfg.Quantum)

	if err := sched.RunAll(pid); err != nil {
		logger.Errorf("failed to run process: %s", err)
		return 1
	}
	logger.Infof("NVM process %d finished with exit code: %d", pid, table.ExitCode(pid))

	return 0
}
