package accel

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/acceldrv/go-axibram/bram"
	"github.com/acceldrv/go-axibram/hwdef"
	"github.com/acceldrv/go-axibram/mmio"
	"github.com/acceldrv/go-axibram/regbank"
)

// Direction selects what a Transfer does at its word address.
type Direction int

const (
	// Read loads one word from the data window
	Read Direction = iota

	// Write stores one word into the data window
	Write
)

// Descriptor describes one gated transfer: a single wide access at a
// word address. A descriptor lives for the duration of one Transfer
// call; nothing is retained.
type Descriptor struct {
	// Addr is the word address within the data window
	Addr uint32

	// Dir selects read or write
	Dir Direction

	// Value is the payload for a write; ignored for a read
	Value mmio.Word
}

// Controller drives one accelerator instance. It sequences the gate
// around every data window access and the start/poll handshake for runs,
// and serializes all of it through one mutex: the gate register is the
// only synchronization the hardware has, and it provides no atomicity on
// its own.
//
// The mutex only protects against races among this driver's callers.
// Another bus master poking the same peripheral is outside its reach.
//
// Controller is safe for concurrent use.
type Controller struct {
	mu     sync.Mutex
	bank   *regbank.Bank
	window *bram.Window
	config Config

	// gate shadow for instrumented checking, guarded by mu
	gateUp bool

	// regions owned by Open, closed by Close
	owned []io.Closer
}

// New creates a Controller over two already-mapped regions: the control
// register bank and the bulk data window.
//
// Example:
//
//	ctrl := accel.New(ctrlRegion, dataRegion,
//	    accel.WithPollInterval(10*time.Millisecond),
//	    accel.WithTimeout(5*time.Second),
//	)
func New(ctrlRegion, dataRegion mmio.Region, opts ...Option) *Controller {
	if ctrlRegion == nil || dataRegion == nil {
		panic("accel: regions cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Controller{
		bank:   regbank.NewBank(ctrlRegion),
		window: bram.NewWindow(dataRegion),
		config: cfg,
	}
	if cfg.GateAssertions {
		c.window.SetAccessCheck(func() {
			if !c.gateUp {
				panic("accel: data window access with gate deasserted")
			}
		})
	}
	return c
}

// Open maps the regions described by an exported platform through
// /dev/mem and builds a Controller over them. Close releases the
// mappings.
//
// Example:
//
//	p, err := hwdef.Parse("xparameters.h")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctrl, err := accel.Open(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Close()
func Open(p hwdef.Platform, opts ...Option) (*Controller, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.WordBits != mmio.WordBits {
		return nil, &UnsupportedWordWidthError{Bits: p.WordBits}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WindowWords <= 0 {
		return nil, fmt.Errorf("accel: window size must be known to map the data region")
	}

	ctrlRegion, err := mmio.MapRegion(p.CtrlBase, regbank.Size)
	if err != nil {
		return nil, fmt.Errorf("accel: map control bank at 0x%X: %w", p.CtrlBase, err)
	}
	dataRegion, err := mmio.MapRegion(p.DataBase, cfg.WindowWords*mmio.WordBytes)
	if err != nil {
		_ = ctrlRegion.Close()
		return nil, fmt.Errorf("accel: map data window at 0x%X: %w", p.DataBase, err)
	}

	c := New(ctrlRegion, dataRegion, opts...)
	c.owned = []io.Closer{dataRegion, ctrlRegion}
	return c, nil
}

// Close releases region mappings created by Open. A Controller built
// with New over caller-provided regions owns nothing; Close is then a
// no-op.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var first error
	for _, cl := range c.owned {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.owned = nil
	return first
}

// Transfer performs one gated transfer: assert gate, one wide access at
// the descriptor's address, deassert gate. From the caller's point of
// view the sequence is atomic; at most one transfer is ever in flight
// per Controller. For a read the loaded word is returned; for a write
// the returned word is zero.
//
// The gate is deasserted on every exit path. There is no retry: the
// hardware cannot report a failed store, so retrying could only mask a
// disagreement that later reads would surface.
func (c *Controller) Transfer(ctx context.Context, d Descriptor) (mmio.Word, error) {
	switch d.Dir {
	case Read, Write:
	default:
		return mmio.Word{}, fmt.Errorf("accel: unknown transfer direction %d", int(d.Dir))
	}
	if c.config.WindowWords > 0 && d.Addr >= uint32(c.config.WindowWords) {
		return mmio.Word{}, &AddressOutOfRangeError{Addr: d.Addr, Words: c.config.WindowWords}
	}
	if err := ctx.Err(); err != nil {
		return mmio.Word{}, fmt.Errorf("accel: cancelled: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setGate(true)
	defer c.setGate(false)

	var out mmio.Word
	if d.Dir == Read {
		out = c.window.Read(d.Addr)
	} else {
		c.window.Write(d.Addr, d.Value)
	}
	return out, nil
}

// ReadWord performs a gated read of one data window word.
func (c *Controller) ReadWord(ctx context.Context, wordAddr uint32) (mmio.Word, error) {
	return c.Transfer(ctx, Descriptor{Addr: wordAddr, Dir: Read})
}

// WriteWord performs a gated write of one data window word.
func (c *Controller) WriteWord(ctx context.Context, wordAddr uint32, w mmio.Word) error {
	_, err := c.Transfer(ctx, Descriptor{Addr: wordAddr, Dir: Write, Value: w})
	return err
}

// setGate drives the gate slot and the instrumented shadow together.
// Callers hold c.mu.
func (c *Controller) setGate(on bool) {
	if on {
		c.bank.SetGate(true)
		c.gateUp = true
	} else {
		c.gateUp = false
		c.bank.SetGate(false)
	}
}

// SetMode stores a configuration value without starting a run.
func (c *Controller) SetMode(mode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bank.WriteMode(mode)
}

// Start issues a start pulse without waiting. Most callers want
// RunAndWait; Start exists for callers that poll through Status on their
// own schedule. Starting while the peripheral is running starts a new
// run rather than resuming the current one.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bank.WriteStart()
}

// Status performs one fresh status poll.
func (c *Controller) Status() regbank.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bank.ReadStatus()
}

// RunAndWait starts a run with the given mode value and polls until the
// peripheral reports a terminal status.
//
// The wait is bounded: if no terminal status appears within the
// configured timeout, RunAndWait returns a TimeoutError no later than
// timeout + one poll interval after the start pulse. A status with both
// terminal bits set returns an UndefinedStatusError. The returned Status
// is the last value loaded, whatever the error.
//
// The start/poll sequence holds the driver mutex for its whole duration,
// so no gated transfer can interleave with a run.
func (c *Controller) RunAndWait(ctx context.Context, mode uint32) (regbank.Status, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("accel: cancelled: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.bank.WriteMode(mode)
	c.bank.WriteStart()
	c.logDebug("run started", "mode", mode)
	c.reportProgress(Progress{Phase: PhaseStarted, Mode: mode})

	started := time.Now()
	deadline := started.Add(c.config.Timeout)
	polls := 0

	for {
		st := c.bank.ReadStatus()
		polls++

		if st.Undefined() {
			c.logError("undefined status", "raw", fmt.Sprintf("0x%08X", uint32(st)), "polls", polls)
			return st, &UndefinedStatusError{Raw: uint32(st)}
		}
		if st.Terminal() {
			c.reportProgress(Progress{
				Phase:   PhaseDone,
				Mode:    mode,
				Polls:   polls,
				Elapsed: time.Since(started),
			})
			c.logInfo("run finished",
				"mode", mode,
				"status", st.String(),
				"polls", polls,
				"elapsed", time.Since(started).String(),
			)
			return st, nil
		}

		if time.Now().After(deadline) {
			c.logError("run timed out", "mode", mode, "timeout", c.config.Timeout.String(), "polls", polls)
			return st, &TimeoutError{Mode: mode, Timeout: c.config.Timeout, Polls: polls}
		}

		c.reportProgress(Progress{
			Phase:   PhasePolling,
			Mode:    mode,
			Polls:   polls,
			Elapsed: time.Since(started),
		})

		select {
		case <-ctx.Done():
			return st, fmt.Errorf("accel: cancelled: %w", ctx.Err())
		case <-time.After(c.config.PollInterval):
		}
	}
}

// reportProgress calls the progress callback if configured.
func (c *Controller) reportProgress(p Progress) {
	if c.config.ProgressCallback != nil {
		c.config.ProgressCallback(p)
	}
}

// logDebug logs a debug message if a logger is configured.
func (c *Controller) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (c *Controller) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (c *Controller) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
