package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pipes"
	"github.com/npillmayer/pipes/host"
	"github.com/npillmayer/pipes/pipe"
	"github.com/npillmayer/pipes/scene"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	app  *host.App
	repl *readline.Instance
}

// errUsage flags a malformed command line.
var errUsage = errors.New("usage")

type command struct {
	args int
	help string
	run  func(intp *Intp, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"click":   {2, "click x y          click on the stage", (*Intp).click},
		"drag":    {4, "drag x0 y0 x1 y1   drag from one position to another", (*Intp).drag},
		"down":    {2, "down x y           pointer down", (*Intp).pointer},
		"move":    {2, "move x y           pointer move", (*Intp).pointer},
		"up":      {2, "up x y             pointer up", (*Intp).pointer},
		"list":    {0, "list               list pipes", (*Intp).list},
		"animate": {1, "animate n          start playback for pipe n", (*Intp).animate},
		"toggle":  {1, "toggle n           play/stop playback of pipe n", (*Intp).session},
		"mode":    {1, "mode n             switch formula/table mode of pipe n", (*Intp).session},
		"destroy": {1, "destroy n          end playback of pipe n", (*Intp).session},
		"scrub":   {2, "scrub n t          set parameter t of pipe n", (*Intp).scrub},
		"tick":    {1, "tick k             advance k frames", (*Intp).tick},
		"run":     {1, "run ms             run the frame loop at 60 fps for ms milliseconds", (*Intp).run},
		"resize":  {2, "resize w h         resize the stage", (*Intp).resize},
		"png":     {1, "png path           write the stage to a PNG file", (*Intp).png},
		"thumb":   {3, "thumb path w h     write a thumbnail of the stage", (*Intp).thumb},
		"help":    {0, "help               show this list", (*Intp).help},
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		tracer().Debugf("input line = '%s'", line)
		if err := intp.Execute(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
}

// Execute parses and runs a single command line.
func (intp *Intp) Execute(line string) error {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	cmd, ok := commands[words[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", words[0])
	}
	if len(words)-1 != cmd.args {
		return fmt.Errorf("%w: %s", errUsage, cmd.help)
	}
	return cmd.run(intp, words)
}

// --- Commands --------------------------------------------------------------

func (intp *Intp) click(args []string) error {
	p, err := pair(args[1], args[2])
	if err != nil {
		return err
	}
	pp, err := intp.app.Click(p)
	if err != nil {
		return err
	}
	if pp != nil {
		pterm.Printfln("%s: %s", pp.Name(), pp.Triple())
	}
	return nil
}

func (intp *Intp) drag(args []string) error {
	from, err := pair(args[1], args[2])
	if err != nil {
		return err
	}
	to, err := pair(args[3], args[4])
	if err != nil {
		return err
	}
	if !intp.app.PointerDown(from) {
		return fmt.Errorf("nothing to drag at %s", from)
	}
	intp.app.PointerMove(to)
	intp.app.PointerUp(to)
	intp.app.Tick()
	return nil
}

func (intp *Intp) pointer(args []string) error {
	p, err := pair(args[1], args[2])
	if err != nil {
		return err
	}
	var ok bool
	switch args[0] {
	case "down":
		ok = intp.app.PointerDown(p)
	case "move":
		ok = intp.app.PointerMove(p)
	case "up":
		ok = intp.app.PointerUp(p)
	}
	if !ok {
		pterm.Info.Println("nothing dragged")
	}
	return nil
}

func (intp *Intp) list([]string) error {
	all := intp.app.Pipes()
	if len(all) == 0 {
		pterm.Info.Println("no pipes, click on the stage to create one")
		return nil
	}
	names := make([]string, 0, len(all))
	for i, p := range all {
		state := modeName(p.Session())
		if p.Hidden() {
			state += " (hidden)"
		}
		names = append(names, fmt.Sprintf("%2d  %-8s %s  %s", i, p.Name(), p.Triple(), state))
	}
	for _, n := range names {
		pterm.Println(n)
	}
	return nil
}

func (intp *Intp) animate(args []string) error {
	p, err := intp.pipe(args[1])
	if err != nil {
		return err
	}
	_, err = p.Animate()
	return err
}

func (intp *Intp) session(args []string) error {
	s, err := intp.sessionOf(args[1])
	if err != nil {
		return err
	}
	switch args[0] {
	case "toggle":
		s.Toggle()
	case "mode":
		s.ToggleMode()
	case "destroy":
		return s.Destroy()
	}
	pterm.Printfln("%s: %s", s.Pipe().Name(), modeName(s))
	return nil
}

func (intp *Intp) scrub(args []string) error {
	s, err := intp.sessionOf(args[1])
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return err
	}
	s.Scrub(v)
	pterm.Printfln("%s: pen at %s", s.Pipe().Name(), s.Pen())
	return nil
}

func (intp *Intp) tick(args []string) error {
	k, err := strconv.Atoi(args[1])
	if err != nil || k < 0 {
		return fmt.Errorf("frame count must be a non-negative integer: %q", args[1])
	}
	for i := 0; i < k; i++ {
		intp.app.Tick()
	}
	return nil
}

func (intp *Intp) run(args []string) error {
	ms, err := strconv.Atoi(args[1])
	if err != nil || ms < 0 {
		return fmt.Errorf("duration must be a non-negative integer: %q", args[1])
	}
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	done := time.After(time.Duration(ms) * time.Millisecond)
	frames := 0
	for {
		select {
		case <-done:
			tracer().Infof("ran %d frames", frames)
			return nil
		case <-ticker.C:
			intp.app.Tick()
			frames++
		}
	}
}

func (intp *Intp) resize(args []string) error {
	w, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	h, err := strconv.Atoi(args[2])
	if err != nil {
		return err
	}
	return intp.app.Resize(w, h)
}

func (intp *Intp) png(args []string) error {
	if err := intp.app.SavePNG(args[1]); err != nil {
		return err
	}
	pterm.Info.Println("wrote " + args[1])
	return nil
}

func (intp *Intp) thumb(args []string) error {
	w, err := strconv.Atoi(args[2])
	if err != nil {
		return err
	}
	h, err := strconv.Atoi(args[3])
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("thumbnail size must be positive: %dx%d", w, h)
	}
	img := intp.app.Thumbnail(w, h)
	return scene.WritePNG(args[1], img)
}

func (intp *Intp) help([]string) error {
	keys := make([]string, 0, len(commands))
	for k := range commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pterm.Println("  " + commands[k].help)
	}
	pterm.Println("  quit               leave")
	return nil
}

// --- Helpers ---------------------------------------------------------------

func (intp *Intp) pipe(arg string) (*pipe.Pipe, error) {
	n, err := strconv.Atoi(arg)
	all := intp.app.Pipes()
	if err != nil || n < 0 || n >= len(all) {
		return nil, fmt.Errorf("no pipe #%s, see 'list'", arg)
	}
	return all[n], nil
}

func (intp *Intp) sessionOf(arg string) (*pipe.Session, error) {
	p, err := intp.pipe(arg)
	if err != nil {
		return nil, err
	}
	if s := p.Session(); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%s is not animating, try 'animate %s'", p.Name(), arg)
}

func pair(xs, ys string) (pipes.Pair, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return pipes.Origin, fmt.Errorf("not a coordinate: %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return pipes.Origin, fmt.Errorf("not a coordinate: %q", ys)
	}
	return pipes.P(x, y), nil
}
