package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// ProcessName identifies a production step from the shop's fixed vocabulary.
// The vocabulary drives which steps can be attached to an order and which
// steps offer a choice of exclusive equipment.
type ProcessName string

// The controlled vocabulary of production steps.
const (
	Printing           ProcessName = "Printing"
	Lamination         ProcessName = "Lamination"
	Mounting           ProcessName = "Mounting"
	MagnetCutting      ProcessName = "Magnet cutting"
	TapeApplication    ProcessName = "Tape application"
	PlotterCutting     ProcessName = "Plotter cutting"
	ResinFilling       ProcessName = "Resin filling"
	GlassLaying        ProcessName = "Glass laying"
	GlassRemoval       ProcessName = "Glass removal"
	DieCutting         ProcessName = "Die-cutting"
	Sorting            ProcessName = "Sorting"
	Packaging          ProcessName = "Packaging"
	FlowPackPackaging  ProcessName = "Flow-pack packaging"
	TearStripPackaging ProcessName = "Tear-strip bag packaging"
	CutterSlitting     ProcessName = "Cutter slitting"
	UtilityWork        ProcessName = "Utility work"
)

// Press names available to the die-cutting step. Each press is a single
// physical resource shared across all orders.
const (
	Press1 = "Press-1"
	Press2 = "Press-2"
)

func getValidProcessNames() map[ProcessName]struct{} {
	return map[ProcessName]struct{}{
		Printing:           {},
		Lamination:         {},
		Mounting:           {},
		MagnetCutting:      {},
		TapeApplication:    {},
		PlotterCutting:     {},
		ResinFilling:       {},
		GlassLaying:        {},
		GlassRemoval:       {},
		DieCutting:         {},
		Sorting:            {},
		Packaging:          {},
		FlowPackPackaging:  {},
		TearStripPackaging: {},
		CutterSlitting:     {},
		UtilityWork:        {},
	}
}

// NewProcessName validates a raw string against the vocabulary.
func NewProcessName(raw string) (ProcessName, error) {
	name := ProcessName(raw)
	if err := name.Validate(); err != nil {
		return "", err
	}
	return name, nil
}

// Validate checks membership in the controlled vocabulary.
func (n ProcessName) Validate() error {
	if _, ok := getValidProcessNames()[n]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("process name is invalid",
			fmt.Errorf("%q is not a known production process", string(n)))
	}
	return nil
}

// String returns the display name of the process.
func (n ProcessName) String() string {
	return string(n)
}

// OffersEquipment reports whether this process kind declares an equipment
// requirement. Only steps that do are subject to equipment arbitration;
// for all other steps an equipment name on a start request is ignored by
// the arbiter.
func (n ProcessName) OffersEquipment() bool {
	return n == DieCutting
}

// EquipmentChoices returns the named equipment units a worker may pick for
// this process kind, or nil when the process declares no equipment.
func (n ProcessName) EquipmentChoices() []string {
	if !n.OffersEquipment() {
		return nil
	}
	return []string{Press1, Press2}
}
