package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/chainset/hashset"
	"github.com/npillmayer/schuko/gconf"
)

// ErrUnknownCommand is wrapped by errors for commands the shell does not know.
var ErrUnknownCommand = errors.New("unknown command")

// ErrUsage is wrapped by errors for commands with wrong arguments.
var ErrUsage = errors.New("usage")

// ErrUndefined is wrapped by errors for references to undefined sets.
var ErrUndefined = errors.New("undefined set")

// MaxCapacity is the largest bucket count the new command accepts.
const MaxCapacity = 1 << 20

// Shell evaluates command lines against a registry of named sets.
type Shell struct {
	Sets     *Registry
	Out      io.Writer
	scanner  *Scanner
	commands map[string]*command
}

// Call holds the resolved arguments of a command invocation.
type Call struct {
	Sets  []*Binding // set arguments, in order of appearance
	Names []string   // name arguments of sets which may not exist yet
	Keys  []int64    // key arguments
}

// Handler is a function executing a command.
type Handler func(sh *Shell, c Call) error

type command struct {
	name      string
	signature string
	help      string
	run       Handler
}

// New creates a shell writing its output to out. If out is nil, output goes
// to os.Stdout.
func New(out io.Writer) (*Shell, error) {
	if out == nil {
		out = os.Stdout
	}
	sc, err := NewScanner()
	if err != nil {
		return nil, err
	}
	sh := &Shell{
		Sets:     NewRegistry(),
		Out:      out,
		scanner:  sc,
		commands: make(map[string]*command),
	}
	sh.bindStandardCommands()
	return sh, nil
}

// Bind adds a command to the shell, replacing any command of the same name.
//
// The signature describes the arguments, one character per argument:
//
//     S   an existing set
//     N   a set name, which need not be bound yet
//     k   a key
//     K   zero or more keys (last position only)
//     c   an optional key (last position only)
//
func (sh *Shell) Bind(name, signature, help string, run Handler) {
	sh.commands[name] = &command{
		name:      name,
		signature: signature,
		help:      help,
		run:       run,
	}
}

// Printf writes formatted output of a command.
func (sh *Shell) Printf(format string, args ...interface{}) {
	fmt.Fprintf(sh.Out, format, args...)
}

// Eval evaluates a single command line. It returns true if the command asks
// to quit the shell. Empty lines and comments are no-ops.
func (sh *Shell) Eval(line string) (bool, error) {
	tokens, err := sh.scanner.Tokenize(line)
	if err != nil {
		return false, sh.failed(err)
	}
	if len(tokens) == 0 {
		return false, nil
	}
	if tokens[0].Kind != Ident {
		return false, sh.failed(fmt.Errorf("%w: command expected, have %q", ErrSyntax, tokens[0].Lexeme))
	}
	name := tokens[0].Lexeme
	if name == "quit" || name == "exit" {
		return true, nil
	}
	cmd, ok := sh.commands[name]
	if !ok {
		return false, sh.failed(fmt.Errorf("%w: %s", ErrUnknownCommand, name))
	}
	call, err := sh.resolve(cmd, tokens[1:])
	if err != nil {
		return false, sh.failed(err)
	}
	tracer().Debugf("executing %s with %d sets, %d keys", cmd.name, len(call.Sets), len(call.Keys))
	if err = cmd.run(sh, call); err != nil {
		return false, sh.failed(fmt.Errorf("%s: %w", cmd.name, err))
	}
	return false, nil
}

func (sh *Shell) failed(err error) error {
	tracer().Errorf("%v", err)
	if gconf.GetBool("shell.panic-on-error") {
		panic(err)
	}
	return err
}

// resolve matches tokens against a command's signature.
func (sh *Shell) resolve(cmd *command, args []Token) (Call, error) {
	var call Call
	usage := func() error {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage())
	}
	i := 0
	for _, kind := range cmd.signature {
		switch kind {
		case 'S', 'N':
			if i >= len(args) || args[i].Kind != Ident {
				return call, usage()
			}
			if kind == 'N' {
				call.Names = append(call.Names, args[i].Lexeme)
			} else if b := sh.Sets.Resolve(args[i].Lexeme); b != nil {
				call.Sets = append(call.Sets, b)
			} else {
				return call, fmt.Errorf("%w: %s", ErrUndefined, args[i].Lexeme)
			}
			i++
		case 'k', 'c':
			if i >= len(args) {
				if kind == 'c' {
					continue
				}
				return call, usage()
			}
			k, err := key(args[i])
			if err != nil {
				return call, err
			}
			call.Keys = append(call.Keys, k)
			i++
		case 'K':
			for ; i < len(args); i++ {
				k, err := key(args[i])
				if err != nil {
					return call, err
				}
				call.Keys = append(call.Keys, k)
			}
		}
	}
	if i < len(args) {
		return call, usage()
	}
	return call, nil
}

func key(t Token) (int64, error) {
	if t.Kind != Int {
		return 0, fmt.Errorf("%w: key expected at column %d, have %q", ErrSyntax, t.Span.From(), t.Lexeme)
	}
	return strconv.ParseInt(t.Lexeme, 10, 64)
}

func (cmd *command) usage() string {
	var b strings.Builder
	b.WriteString(cmd.name)
	for _, kind := range cmd.signature {
		switch kind {
		case 'S':
			b.WriteString(" <set>")
		case 'N':
			b.WriteString(" <name>")
		case 'k':
			b.WriteString(" <key>")
		case 'K':
			b.WriteString(" <key>…")
		case 'c':
			b.WriteString(" [<capacity>]")
		}
	}
	return b.String()
}

// --- Standard commands -----------------------------------------------------

func (sh *Shell) bindStandardCommands() {
	sh.Bind("new", "Nc", "create an empty set", cmdNew)
	sh.Bind("insert", "SK", "insert keys", cmdInsert)
	sh.Bind("erase", "SK", "erase keys, print 1 for every erased key, 0 otherwise", cmdErase)
	sh.Bind("find", "Sk", "find a key and print its bucket", cmdFind)
	sh.Bind("count", "Sk", "print 1 if a key is present, 0 otherwise", cmdCount)
	sh.Bind("size", "S", "print size, capacity and load factor", cmdSize)
	sh.Bind("clear", "S", "remove all keys", cmdClear)
	sh.Bind("swap", "SS", "exchange the contents of two sets", cmdSwap)
	sh.Bind("copy", "SN", "copy a set to a (new) name", cmdCopy)
	sh.Bind("eq", "SS", "compare two sets", cmdEqual)
	sh.Bind("overlap", "SS", "check if two sets share 90% of their keys", cmdOverlap)
	sh.Bind("list", "S", "print keys in iteration order", cmdList)
	sh.Bind("sorted", "S", "print keys in ascending order", cmdSorted)
	sh.Bind("dump", "S", "print the bucket table", cmdDump)
	sh.Bind("digest", "S", "print a fingerprint of the keys, independent of the bucket layout", cmdDigest)
	sh.Bind("lasterased", "S", "print last erased and last unsuccessfully erased key", cmdLastErased)
	sh.Bind("lessthanerased", "S", "count keys less than the last erased key", cmdLessThanErased)
	sh.Bind("above", "S", "print smallest key above the last unsuccessfully erased key", cmdAbove)
	sh.Bind("below", "Sk", "print largest key below a key", cmdBelow)
	sh.Bind("sets", "", "list all sets", cmdSets)
	sh.Bind("help", "", "print this help", cmdHelp)
}

func ordered(b *Binding) hashset.OrderedView[int64] {
	return b.Set.Ordered(hashset.NaturalOrder[int64]())
}

func cmdNew(sh *Shell, c Call) error {
	var opts []hashset.Option[int64]
	if len(c.Keys) > 0 {
		if c.Keys[0] < 1 || c.Keys[0] > MaxCapacity {
			return fmt.Errorf("%w: capacity must be in 1…%d, is %d", ErrUsage, MaxCapacity, c.Keys[0])
		}
		opts = append(opts, hashset.WithCapacity[int64](int(c.Keys[0])))
	}
	b := &Binding{name: c.Names[0], Set: hashset.New(opts...)}
	if old := sh.Sets.Insert(b); old != nil {
		tracer().Infof("replacing set %s", old.Name())
	}
	return nil
}

func cmdInsert(sh *Shell, c Call) error {
	inserted := 0
	for _, k := range c.Keys {
		if _, ok := c.Sets[0].Set.Insert(k); ok {
			inserted++
		}
	}
	tracer().Debugf("inserted %d of %d keys", inserted, len(c.Keys))
	return nil
}

func cmdErase(sh *Shell, c Call) error {
	counts := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		counts[i] = strconv.Itoa(c.Sets[0].Set.Erase(k))
	}
	sh.Printf("%s\n", strings.Join(counts, " "))
	return nil
}

func cmdFind(sh *Shell, c Call) error {
	it := c.Sets[0].Set.Find(c.Keys[0])
	if it.AtEnd() {
		sh.Printf("%d not found\n", c.Keys[0])
		return nil
	}
	sh.Printf("%d found in bucket %d\n", it.Key(), it.Bucket())
	return nil
}

func cmdCount(sh *Shell, c Call) error {
	sh.Printf("%d\n", c.Sets[0].Set.Count(c.Keys[0]))
	return nil
}

func cmdSize(sh *Shell, c Call) error {
	S := c.Sets[0].Set
	sh.Printf("size %d, capacity %d, load %.2f\n", S.Size(), S.Capacity(), S.LoadFactor())
	return nil
}

func cmdClear(sh *Shell, c Call) error {
	c.Sets[0].Set.Clear()
	return nil
}

func cmdSwap(sh *Shell, c Call) error {
	c.Sets[0].Set.Swap(c.Sets[1].Set)
	return nil
}

func cmdCopy(sh *Shell, c Call) error {
	target, _ := sh.Sets.ResolveOrDefine(c.Names[0])
	target.Set.Assign(c.Sets[0].Set)
	return nil
}

func cmdEqual(sh *Shell, c Call) error {
	sh.Printf("%v\n", hashset.Equal(c.Sets[0].Set, c.Sets[1].Set))
	return nil
}

func cmdOverlap(sh *Shell, c Call) error {
	sh.Printf("%v\n", hashset.Overlaps(c.Sets[0].Set, c.Sets[1].Set))
	return nil
}

func cmdList(sh *Shell, c Call) error {
	sh.Printf("%s\n", c.Sets[0].Set)
	return nil
}

func cmdSorted(sh *Shell, c Call) error {
	sh.Printf("%v\n", ordered(c.Sets[0]).Sorted())
	return nil
}

func cmdDump(sh *Shell, c Call) error {
	return c.Sets[0].Set.Dump(sh.Out)
}

// digest is the structure fingerprinted by cmdDigest.
type digest struct {
	Keys []int64
}

func cmdDigest(sh *Shell, c Call) error {
	fp, err := structhash.Hash(digest{Keys: ordered(c.Sets[0]).Sorted()}, 1)
	if err != nil {
		return err
	}
	sh.Printf("%s\n", fp)
	return nil
}

func cmdLastErased(sh *Shell, c Call) error {
	S := c.Sets[0].Set
	if k, ok := S.LastErased(); ok {
		sh.Printf("last erased: %d\n", k)
	} else {
		sh.Printf("last erased: none\n")
	}
	if k, ok := S.LastUnsuccessful(); ok {
		sh.Printf("last unsuccessful: %d\n", k)
	} else {
		sh.Printf("last unsuccessful: none\n")
	}
	return nil
}

func cmdLessThanErased(sh *Shell, c Call) error {
	cnt, err := ordered(c.Sets[0]).CountBelowLastErased()
	if err != nil {
		return err
	}
	sh.Printf("%d\n", cnt)
	return nil
}

func cmdAbove(sh *Shell, c Call) error {
	if k, ok := ordered(c.Sets[0]).SmallestAboveLastUnsuccessful(); ok {
		sh.Printf("%d\n", k)
	} else {
		sh.Printf("none\n")
	}
	return nil
}

func cmdBelow(sh *Shell, c Call) error {
	it := ordered(c.Sets[0]).LargestBelow(c.Keys[0])
	if it.AtEnd() {
		sh.Printf("none\n")
		return nil
	}
	sh.Printf("%d\n", it.Key())
	return nil
}

func cmdSets(sh *Shell, c Call) error {
	sh.Sets.Each(func(name string, b *Binding) {
		sh.Printf("%s = %s\n", name, b.Set)
	})
	return nil
}

func cmdHelp(sh *Shell, c Call) error {
	names := hashset.New[string]()
	for name := range sh.commands {
		names.Insert(name)
	}
	for _, name := range names.Ordered(hashset.NaturalOrder[string]()).Sorted() {
		cmd := sh.commands[name]
		sh.Printf("%-36s %s\n", cmd.usage(), cmd.help)
	}
	sh.Printf("%-36s %s\n", "quit", "leave the shell")
	return nil
}
