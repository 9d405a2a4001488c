package validate

import "fmt"

// phase tracks the runner's position in the pipeline. Transitions are
// strictly sequential with one branch: pruning only happens after a
// successful comparison.
type phase int

const (
	phaseIdle phase = iota
	phaseScanning
	phaseParsing
	phaseComparing
	phasePruning
	phaseReported
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseScanning:
		return "scanning"
	case phaseParsing:
		return "parsing"
	case phaseComparing:
		return "comparing"
	case phasePruning:
		return "pruning"
	case phaseReported:
		return "reported"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// validNext enumerates the allowed transitions. No backtracking.
var validNext = map[phase][]phase{
	phaseIdle:      {phaseScanning},
	phaseScanning:  {phaseParsing},
	phaseParsing:   {phaseComparing},
	phaseComparing: {phasePruning, phaseReported},
	phasePruning:   {phaseReported},
}

func (p phase) canEnter(next phase) bool {
	for _, allowed := range validNext[p] {
		if next == allowed {
			return true
		}
	}
	return false
}
