// Package workflow implements the upload → analysis → result state machine.
// The Controller is the single source of truth for the UI phase: every
// mutation is a guarded transition, so invalid combinations (a result
// while idle, two in-flight requests) are unrepresentable.
package workflow

import (
	"errors"

	"github.com/google/uuid"

	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/client"
	"github.com/costcorrect/costcorrect/internal/intake"
)

// Phase is the workflow phase. Exactly one is active at a time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUploading
	PhaseDone
	PhaseError
)

// String returns the phase name for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseUploading:
		return "uploading"
	case PhaseDone:
		return "done"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Guard violations. These are programming-level signals, not user errors:
// the UI should not offer the action when the guard would reject it.
var (
	ErrNoFile          = errors.New("no file selected")
	ErrBusy            = errors.New("a request is already in flight")
	ErrUpgradeRequired = errors.New("multi-floor analysis and cost estimation are Pro features")
	ErrFloorsRange     = errors.New("floors must be between 1 and 4")
)

// FreeTier is the non-paying tier name used for gating.
const FreeTier = "free"

// Request identifies one submitted analysis and carries its frozen inputs.
type Request struct {
	ID     string
	File   *intake.File
	Params client.Params
}

// Controller owns the workflow state. Not safe for concurrent use; it is
// driven from a single event loop.
type Controller struct {
	phase  Phase
	tier   string
	file   *intake.File
	params client.Params
	result *boq.Result
	errMsg string

	// inflight keys the outstanding request so a late result from an
	// abandoned request is ignored instead of applied to stale state.
	inflight string
}

// NewController creates a Controller in the Idle phase for the given tier.
func NewController(tier string) *Controller {
	return &Controller{
		phase:  PhaseIdle,
		tier:   tier,
		params: client.DefaultParams(),
	}
}

// Phase returns the current workflow phase.
func (c *Controller) Phase() Phase { return c.phase }

// Tier returns the active subscription tier.
func (c *Controller) Tier() string { return c.tier }

// File returns the current selection, or nil.
func (c *Controller) File() *intake.File { return c.file }

// Result returns the received BOQ, non-nil only in the Done phase.
func (c *Controller) Result() *boq.Result { return c.result }

// ErrorMessage returns the failure message, non-empty only in Error.
func (c *Controller) ErrorMessage() string { return c.errMsg }

// Params returns the analysis parameters that will be submitted.
// Free tier always gets the defaults, regardless of any client-side
// tampering; the service re-validates anyway.
func (c *Controller) Params() client.Params {
	if c.tier == FreeTier {
		return client.DefaultParams()
	}
	return c.params
}

// SetTier updates the resolved subscription tier. Dropping to free snaps
// the parameters back to their defaults.
func (c *Controller) SetTier(tier string) {
	c.tier = tier
	if tier == FreeTier {
		c.params = client.DefaultParams()
	}
}

// CanSubmit reports whether the submit action should be offered.
func (c *Controller) CanSubmit() bool {
	return c.file != nil && (c.phase == PhaseIdle || c.phase == PhaseError)
}

// CanConfigure reports whether the parameter controls should be enabled.
func (c *Controller) CanConfigure() bool {
	return c.tier != FreeTier && (c.phase == PhaseIdle || c.phase == PhaseError)
}

// SelectFile replaces the current selection and clears any prior error.
// Only valid while no request is in flight.
func (c *Controller) SelectFile(f *intake.File) error {
	if c.phase == PhaseUploading {
		return ErrBusy
	}
	c.file = f
	c.errMsg = ""
	if c.phase == PhaseError {
		c.phase = PhaseIdle
	}
	return nil
}

// SetFloors updates the floor count. Gated to paying tiers and to phases
// where parameters are not frozen.
func (c *Controller) SetFloors(n int) error {
	if err := c.paramGuard(); err != nil {
		return err
	}
	if n < 1 || n > 4 {
		return ErrFloorsRange
	}
	c.params.Floors = n
	return nil
}

// SetEstimatePrices toggles price estimation, with the same gating.
func (c *Controller) SetEstimatePrices(v bool) error {
	if err := c.paramGuard(); err != nil {
		return err
	}
	c.params.EstimatePrices = v
	return nil
}

func (c *Controller) paramGuard() error {
	if c.phase == PhaseUploading {
		return ErrBusy
	}
	if c.tier == FreeTier {
		return ErrUpgradeRequired
	}
	return nil
}

// Submit freezes the parameters and enters Uploading, returning the keyed
// request to execute. Exactly one request may be in flight: submitting
// while Uploading (or without a file) is rejected.
func (c *Controller) Submit() (Request, error) {
	if c.phase != PhaseIdle && c.phase != PhaseError {
		return Request{}, ErrBusy
	}
	if c.file == nil {
		return Request{}, ErrNoFile
	}

	c.phase = PhaseUploading
	c.errMsg = ""
	c.result = nil
	c.inflight = uuid.NewString()

	return Request{ID: c.inflight, File: c.file, Params: c.Params()}, nil
}

// Complete applies a successful result for the identified request.
// Returns false (and changes nothing) when the request is stale: not the
// one in flight, or the controller has since been reset.
func (c *Controller) Complete(requestID string, result *boq.Result) bool {
	if !c.accepts(requestID) {
		return false
	}
	c.phase = PhaseDone
	c.result = result
	c.errMsg = ""
	c.inflight = ""
	return true
}

// Fail applies a failure for the identified request, with the same
// staleness rule as Complete.
func (c *Controller) Fail(requestID string, message string) bool {
	if !c.accepts(requestID) {
		return false
	}
	c.phase = PhaseError
	c.errMsg = message
	c.result = nil
	c.inflight = ""
	return true
}

func (c *Controller) accepts(requestID string) bool {
	return c.phase == PhaseUploading && requestID != "" && requestID == c.inflight
}

// Reset returns to Idle, clearing the selection, result, and error.
// An in-flight request is not aborted; its eventual outcome will simply
// fail the staleness check and be dropped.
func (c *Controller) Reset() {
	c.phase = PhaseIdle
	c.file = nil
	c.result = nil
	c.errMsg = ""
	c.inflight = ""
	c.params = client.DefaultParams()
}
