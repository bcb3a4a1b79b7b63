package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-notemap/config"
	"go-notemap/debug"
	"go-notemap/midi"
	"go-notemap/notemap"
	"go-notemap/theme"
	"go-notemap/tui"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Debug {
		if dir, err := config.ConfigDir(); err == nil {
			if err := debug.Enable(dir); err != nil {
				fmt.Printf("Debug log disabled: %v\n", err)
			}
			defer debug.Disable()
		}
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "gen":
		err = gen(args)
	case "show":
		err = show(cfg, args)
	case "check":
		err = check(cfg, args)
	case "copy":
		err = copyNotemap(args)
	case "yaml":
		err = dumpYAML(cfg, args)
	case "remap":
		err = remap(cfg, args)
	case "ports":
		err = ports()
	case "thru":
		err = thru(cfg, args)
	case "browse":
		err = browse(cfg, args)
	default:
		usage()
		return
	}

	if err != nil {
		debug.Log("main", "%s: %v", os.Args[1], err)
		fmt.Printf("Error: %v\n", err)
		debug.Disable()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Drum notemap tool")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  gen [file]                            - Write the test notemap (test.notemap)")
	fmt.Println("  show [file]                           - Print the note mappings")
	fmt.Println("  check [file]                          - Validate a notemap")
	fmt.Println("  copy <src> <dst>                      - Rewrite a notemap in canonical form")
	fmt.Println("  yaml [file]                           - Print a notemap as YAML")
	fmt.Println("  remap [--reverse] <notemap> <in> <out> - Remap drum notes in a MIDI file")
	fmt.Println("  ports                                 - List MIDI ports")
	fmt.Println("  thru [--reverse] <notemap> <in> <out>  - Remap live between MIDI ports")
	fmt.Println("  browse [file]                         - Browse a notemap interactively")
}

// splitReverse pulls a --reverse flag out of args
func splitReverse(args []string) ([]string, bool) {
	var rest []string
	reverse := false
	for _, a := range args {
		if a == "--reverse" || a == "-r" {
			reverse = true
			continue
		}
		rest = append(rest, a)
	}
	return rest, reverse
}

// notemapArg picks the notemap named on the command line, or the
// configured default
func notemapArg(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Notemap
}

func load(cfg *config.Config, path string, reverse bool) (*notemap.Mapper, error) {
	m, err := notemap.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(m); err != nil {
		return nil, err
	}
	if reverse {
		if err := m.SetReverse(true); err != nil {
			return nil, err
		}
	}
	debug.Log("notemap", "loaded %s: %d drums, reverse=%t", path, m.Len(), m.Reverse())
	return m, nil
}

func loadTheme(cfg *config.Config) (*theme.Theme, error) {
	palette, err := theme.LoadOrDefault(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return theme.New(palette), nil
}

func gen(args []string) error {
	path := notemap.TestFileName
	if len(args) > 0 {
		path = args[0]
	}
	if err := notemap.WriteTestFile(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func show(cfg *config.Config, args []string) error {
	m, err := load(cfg, notemapArg(cfg, args), false)
	if err != nil {
		return err
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}
	fmt.Print(tui.Table(th, m))
	return nil
}

func check(cfg *config.Config, args []string) error {
	path := notemapArg(cfg, args)
	m, err := notemap.ReadFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d drums, map-type %s, gm-channel %d\n", path, m.Len(), m.MapType, m.GMChannel)
	if m.MapType != notemap.MapTypeDrums {
		fmt.Printf("Warning: only %q mappings are applied\n", notemap.MapTypeDrums)
	}
	return nil
}

func copyNotemap(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("copy needs <src> <dst>")
	}
	m, err := notemap.Copy(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("%s --> %s (%d drums)\n", args[0], args[1], m.Len())
	return nil
}

func dumpYAML(cfg *config.Config, args []string) error {
	m, err := notemap.ReadFile(notemapArg(cfg, args))
	if err != nil {
		return err
	}
	return notemap.WriteYAML(os.Stdout, m)
}

func remap(cfg *config.Config, args []string) error {
	args, reverse := splitReverse(args)
	if len(args) != 3 {
		return fmt.Errorf("remap needs <notemap> <in.mid> <out.mid>")
	}
	m, err := load(cfg, args[0], reverse)
	if err != nil {
		return err
	}
	count, err := midi.RemapFile(m, args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Printf("Remapped %d note events: %s --> %s\n", count, args[1], args[2])
	return nil
}

func ports() error {
	defer gomidi.CloseDriver()

	fmt.Println("(waiting up to 3 seconds...)")
	p, err := midi.ListPorts(3 * time.Second)
	if err != nil {
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return err
	}

	fmt.Println("=== MIDI Input Ports ===")
	for i, name := range p.Ins {
		fmt.Printf("  %d: %s\n", i, name)
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, name := range p.Outs {
		fmt.Printf("  %d: %s\n", i, name)
	}
	return nil
}

func thru(cfg *config.Config, args []string) error {
	args, reverse := splitReverse(args)
	if len(args) == 1 && cfg.LastInPort != "" && cfg.LastOutPort != "" {
		args = append(args, cfg.LastInPort, cfg.LastOutPort)
	}
	if len(args) != 3 {
		return fmt.Errorf("thru needs <notemap> <in-port> <out-port>")
	}
	m, err := load(cfg, args[0], reverse)
	if err != nil {
		return err
	}

	defer gomidi.CloseDriver()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Remapping %s -> %s. Ctrl+C to exit.\n", args[1], args[2])
	if err := midi.Thru(ctx, m, args[1], args[2]); err != nil {
		return err
	}

	cfg.RememberPorts(args[1], args[2])
	if err := cfg.Save(); err != nil {
		debug.Log("config", "save: %v", err)
	}
	printCounts(m)
	return nil
}

func printCounts(m *notemap.Mapper) {
	counts := m.Counts()
	var used []string
	for _, e := range m.Entries() {
		src := m.Source(e)
		if n := counts[src]; n > 0 {
			used = append(used, fmt.Sprintf("%d:%d", src, n))
		}
	}
	if len(used) > 0 {
		fmt.Printf("\nRemap counts: %s\n", strings.Join(used, " "))
	}
}

func browse(cfg *config.Config, args []string) error {
	path := notemapArg(cfg, args)
	m, err := load(cfg, path, false)
	if err != nil {
		return err
	}
	th, err := loadTheme(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(m, th, path), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
