package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/chainset/hashset"
	"github.com/npillmayer/chainset/shell"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("HS.REPL"), where users may enter set
// commands. HS.REPL will evaluate each command and print out the result.
//
// Please refer to package "shell" for the command language.
//
func main() {
	// set up configuration and logging
	initDisplay()
	conf := settings{}
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "File with commands to run before the prompt")
	flag.Var(conf, "set", "Configuration key=value, may be repeated")
	flag.Parse()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Printf("hsrepl: chained hash sets of int64 keys, capacity %d\n", hashset.New[int64]().Capacity())
	if len(conf) > 1 {
		tracer().Infof("Configuration: %s", conf)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	tracing.Select("chainset.hashset").SetTraceLevel(traceLevel(*tlevel))
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	// set up shell
	sh, err := shell.New(os.Stdout)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	makeTreeOps(sh)
	repl, err := readline.New("hsrepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{
		repl:  repl,
		shell: sh,
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// Results of the shell go to stdout unstyled, messages of HS.REPL itself
// get a pterm prefix.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " hs ",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " failed ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgWhite),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	shell *shell.Shell
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			lineno++
			continue
		}
		if _, err := intp.shell.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL reads commands until the user quits or input ends (<ctrl>D).
// Errors of single commands are reported and do not end the session.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	evaluated := 0
	for {
		line, err := intp.repl.Readline()
		if err == readline.ErrInterrupt {
			continue // <ctrl>C discards the current line
		} else if err != nil {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if quit, err := intp.Eval(line); quit {
			break
		} else if err == nil {
			evaluated++
		}
	}
	pterm.Info.Printf("%d commands evaluated, %d sets defined\n", evaluated, intp.shell.Sets.Size())
}

// Eval evaluates a command, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	quit, err := intp.shell.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return quit, err
}

func makeTreeOps(sh *shell.Shell) {
	// tree is a helper command to display the buckets of a set as a tree
	// on a terminal
	sh.Bind("tree", "S", "display the bucket table as a tree", func(sh *shell.Shell, c shell.Call) error {
		b := c.Sets[0]
		tracer().Debugf("tree for %v", b)
		pterm.Println(b.Name())
		if b.Set.Empty() {
			pterm.Info.Println("empty set")
			return nil
		}
		root := pterm.NewTreeFromLeveledList(leveledBuckets(b))
		pterm.DefaultTree.WithRoot(root).Render()
		return nil
	})
}

// leveledBuckets lists non-empty buckets on level 0 and their keys, in chain
// order, on level 1.
func leveledBuckets(b *shell.Binding) pterm.LeveledList {
	var ll pterm.LeveledList
	S := b.Set
	chain := -1
	for it := S.Begin(); !it.AtEnd(); it.Next() {
		if it.Bucket() != chain {
			chain = it.Bucket()
			ll = append(ll, pterm.LeveledListItem{
				Level: 0,
				Text:  fmt.Sprintf("bucket %d", chain),
			})
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%d", it.Key()),
		})
	}
	return ll
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
