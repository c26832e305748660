// This file is part of Zube.
//
// Zube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zube.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/zube/bench"
	"github.com/jetsetilly/zube/environment"
	"github.com/jetsetilly/zube/govern"
	"github.com/jetsetilly/zube/logger"
	"github.com/jetsetilly/zube/modalflag"
	"github.com/jetsetilly/zube/monitor"
	"github.com/jetsetilly/zube/paths"
	"github.com/jetsetilly/zube/performance"
	"github.com/jetsetilly/zube/prefs"
	"github.com/jetsetilly/zube/regression"
	"github.com/jetsetilly/zube/rewind"
	"github.com/jetsetilly/zube/script"
	"github.com/jetsetilly/zube/soak"
	"github.com/jetsetilly/zube/statsview"
	"github.com/jetsetilly/zube/version"
	"github.com/jetsetilly/zube/wavwriter"
)

// communication between the main() function and the launch() function.
type mainSync struct {
	// the value to pass to os.Exit()
	quit chan int

	// a mode can leave a function to be called if the program is interrupted
	cleanup chan func()
}

func main() {
	sync := &mainSync{
		quit:    make(chan int),
		cleanup: make(chan func(), 1),
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	exitVal := 0

	select {
	case <-intChan:
		select {
		case f := <-sync.cleanup:
			f()
		default:
		}
		fmt.Println("\r")
	case exitVal = <-sync.quit:
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes(govern.ModeRun.String(), govern.ModeMonitor.String(),
		govern.ModeSoak.String(), govern.ModeMemviz.String(), govern.ModePerformance.String(),
		govern.ModeRegress.String(), "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- 0
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- 10
		return
	}

	if md.Mode() == "VERSION" {
		fmt.Println(version.String())
		sync.quit <- 0
		return
	}

	mode, _ := govern.ParseMode(md.Mode())
	switch mode {
	case govern.ModeRun:
		err = run(md)

	case govern.ModeMonitor:
		err = runMonitor(md, sync)

	case govern.ModeSoak:
		err = runSoak(md)

	case govern.ModeMemviz:
		err = runMemviz(md)

	case govern.ModePerformance:
		err = perform(md)

	case govern.ModeRegress:
		err = regress(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.quit <- 20
		return
	}

	sync.quit <- 0
}

// popPrefs removes the command line preferences pushed at the start of a mode
// and reports any that were not used.
func popPrefs() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Printf("! unused preferences: %s\n", unused)
	}
}

// prepareEnvironment creates the environment for the bridge. Preferences are
// loaded from disk, with any values on the command line stack applied.
func prepareEnvironment(label environment.Label, seed int64) (*environment.Environment, error) {
	env, err := environment.NewEnvironment(label, nil, nil)
	if err != nil {
		return nil, err
	}

	if seed >= 0 {
		env.Random.Reseed(seed)
	}

	return env, nil
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	wav := md.AddString("wav", "", "record signal trace to wav file")
	prefsString := md.AddString("prefs", "", "preferences for this run (key::value; ...)")
	seed := md.AddInt64("seed", -1, "random seed (-1 for a time based seed)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prefs.PushCommandLineStack(*prefsString)
	defer popPrefs()

	setLogEcho(*log)

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("script file required for %s mode", md)
	}

	env, err := prepareEnvironment(environment.MainEmulation, *seed)
	if err != nil {
		return err
	}

	bn := bench.NewBench(env)
	bn.AddProbe(&bench.ContentionProbe{})

	if *wav != "" {
		ww, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		bn.AddProbe(ww)
		defer func() {
			if err := ww.Close(); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	for _, fn := range md.RemainingArgs() {
		scr, err := script.LoadScript(fn, bn, os.Stdout)
		if err != nil {
			return err
		}
		if err := scr.Run(); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", fn)
	}

	return nil
}

func runMonitor(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	prefsString := md.AddString("prefs", "", "preferences for this run (key::value; ...)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prefs.PushCommandLineStack(*prefsString)
	defer popPrefs()

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
		env, err := prepareEnvironment(environment.MainEmulation, -1)
		if err != nil {
			return err
		}

		bn := bench.NewBench(env)
		scr, err := script.LoadScript(md.GetArg(0), bn, os.Stdout)
		if err != nil {
			return err
		}

		pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return err
		}
		rw, err := rewind.NewRewind(bn.Bridge, scr, pth)
		if err != nil {
			return err
		}

		term, err := monitor.OpenTerminal()
		if err != nil {
			return err
		}
		defer term.Close()
		sync.cleanup <- func() { _ = term.Close() }

		return monitor.NewMonitor(scr, bn, rw, term, os.Stdout).Run()

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func runSoak(md *modalflag.Modes) error {
	md.NewMode()

	transactions := md.AddInt("transactions", 100000, "number of bus transactions")
	prefsString := md.AddString("prefs", "", "preferences for this run (key::value; ...)")
	seed := md.AddInt64("seed", -1, "random seed (-1 for a time based seed)")
	stats := md.AddBool("statsview", false, "run stats server for the duration of the soak")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prefs.PushCommandLineStack(*prefsString)
	defer popPrefs()

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	env, err := prepareEnvironment(environment.SoakEmulation, *seed)
	if err != nil {
		return err
	}

	rep, err := soak.Run(env, *transactions, os.Stdout)
	fmt.Println(rep)
	return err
}

func runMemviz(md *modalflag.Modes) error {
	md.NewMode()

	out := md.AddString("out", "bridge.dot", "output file for the graphviz dot file")
	prefsString := md.AddString("prefs", "", "preferences for this run (key::value; ...)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prefs.PushCommandLineStack(*prefsString)
	defer popPrefs()

	env, err := prepareEnvironment(environment.MainEmulation, -1)
	if err != nil {
		return err
	}
	bn := bench.NewBench(env)

	// optionally run a script so that the structure is not in the reset state
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		scr, err := script.LoadScript(md.GetArg(0), bn, nil)
		if err != nil {
			return err
		}
		if err := scr.Run(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, bn.Bridge)
	fmt.Printf("bridge structure written to %s\n", *out)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	leadtime := md.AddString("leadtime", "2s", "time to run before measurement begins")
	profile := md.AddString("profile", "NONE", "run through profiler: CPU, MEM, ALL (comma separated)")
	prefsString := md.AddString("prefs", "", "preferences for this run (key::value; ...)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prefs.PushCommandLineStack(*prefsString)
	defer popPrefs()

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(strings.TrimSpace(*profile))
	if err != nil {
		return err
	}

	env, err := prepareEnvironment(environment.MainEmulation, -1)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, env, prf, *duration, *leadtime)
}

func regress(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	loc, err := regression.DefaultLocation()
	if err != nil {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail")
		failOnError := md.AddBool("fail", false, "stop on first error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(os.Stdout, loc, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}
		return regression.RegressList(os.Stdout, loc)

	case "DELETE":
		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// reading from stdin rather than the terminal so the confirmation
			// requires a newline
			return regression.RegressDelete(os.Stdout, os.Stdin, loc, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

	case "ADD":
		return regressAdd(md, loc)
	}

	return nil
}

func regressAdd(md *modalflag.Modes, loc regression.Location) error {
	md.NewMode()

	prefsString := md.AddString("prefs", "", "bridge preferences for the regression (key::value; ...)")
	notes := md.AddString("notes", "", "notes about the regression entry")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
		reg, err := regression.NewScriptRegression(md.GetArg(0), *prefsString, *notes)
		if err != nil {
			return err
		}
		return regression.RegressAdd(os.Stdout, loc, reg)
	default:
		return fmt.Errorf("only one entry can be added at a time")
	}
}
