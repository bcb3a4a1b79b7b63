package midi

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-notemap/debug"
	"go-notemap/notemap"
)

// ErrPortsTimeout means the MIDI driver did not answer in time
var ErrPortsTimeout = errors.New("timed out listing MIDI ports")

// Ports holds the port names seen by the driver
type Ports struct {
	Ins  []string
	Outs []string
}

// ListPorts returns the available ports. Some drivers (CoreMIDI) can
// hang, so the lookup gives up after timeout.
func ListPorts(timeout time.Duration) (Ports, error) {
	ch := make(chan Ports, 1)
	go func() {
		var p Ports
		for _, in := range gomidi.GetInPorts() {
			p.Ins = append(p.Ins, in.String())
		}
		for _, out := range gomidi.GetOutPorts() {
			p.Outs = append(p.Outs, out.String())
		}
		ch <- p
	}()

	select {
	case p := <-ch:
		return p, nil
	case <-time.After(timeout):
		return Ports{}, ErrPortsTimeout
	}
}

// Thru remaps notes from the input port to the output port until ctx
// is done
func Thru(ctx context.Context, m *notemap.Mapper, inName, outName string) error {
	in, err := gomidi.FindInPort(inName)
	if err != nil {
		return fmt.Errorf("input %q: %w", inName, err)
	}
	out, err := gomidi.FindOutPort(outName)
	if err != nil {
		return fmt.Errorf("output %q: %w", outName, err)
	}
	return thru(ctx, m, in, out)
}

func thru(ctx context.Context, m *notemap.Mapper, in drivers.In, out drivers.Out) error {
	send, err := gomidi.SendTo(out)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer out.Close()

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		remapped, ok := Remap(m, msg)
		if ok {
			debug.Log("thru", "%s -> %s", msg, remapped)
		}
		if err := send(remapped); err != nil {
			debug.Log("thru", "send: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()
	defer stop()

	debug.Log("thru", "%s -> %s", in.String(), out.String())
	<-ctx.Done()
	return nil
}
