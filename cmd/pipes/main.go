/*
Command pipes is an interactive front end for the pipes editor. It reads
commands from a REPL, drives a host App and writes snapshots of the stage to
PNG files.

	pipes -trace Debug -set pipes.width=1024,pipes.preview=exact

Configuration is read from a NestedText file "config.nt" at the standard
configuration location for app "pipes", and may be overridden with -set.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/pipes/host"
	"github.com/npillmayer/pipes/pipe"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pipes.cli'
func tracer() tracing.Trace {
	return tracing.Select("pipes.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.pipes":      "Error",
		"trace.pipes.cli":  "Info",
		"trace.pipes.host": "Info",
		"trace.pipes.pipe": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	settings := flag.String("set", "", "Configuration overrides, e.g. pipes.width=1024,pipes.preview=exact")
	flag.Parse()
	pterm.Info.Println("Welcome to the pipes editor") // colored welcome message
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	// set up configuration
	if err := initConfig(*settings); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	hconf, err := host.LoadGlobalConfig()
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	app, err := host.New(hconf, nil)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer app.Close()
	tracer().Infof("stage is %dx%d", hconf.Width, hconf.Height)
	//
	// set up REPL
	repl, err := readline.New("pipes > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	defer repl.Close()
	intp := &Intp{app: app, repl: repl}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// initConfig loads the configuration defaults, config files and overrides,
// and makes the result the global configuration.
func initConfig(settings string) error {
	k := koanf.New(".")
	defaults := map[string]interface{}{}
	for key, value := range configDefaults(host.DefaultConfig()) {
		defaults[key] = fmt.Sprint(value) // host reads every key as a string
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return err
	}
	kconf := koanfadapter.New(k, "pipes", []string{"nt"})
	gconf.Initialize(kconf) // loads config files
	if settings == "" {
		return nil
	}
	for _, kv := range strings.Split(settings, ",") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("malformed setting %q, expected key=value", kv)
		}
		kconf.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return nil
}

func configDefaults(c host.Config) map[string]interface{} {
	return map[string]interface{}{
		host.KeyWidth:       c.Width,
		host.KeyHeight:      c.Height,
		host.KeyLayerPool:   c.LayerPool,
		host.KeyFormulaRate: c.FormulaRate,
		host.KeyTableRate:   c.TableRate,
		host.KeyPreview:     c.Preview,
		host.KeyTypesetter:  c.Typesetter,
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func modeName(s *pipe.Session) string {
	if s == nil {
		return "editing"
	}
	return fmt.Sprintf("%s/%s t=%.3f", s.State(), s.Mode(), s.T())
}
