package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrensuite/wren/internal/depset"
)

func TestCompare(t *testing.T) {
	used := depset.New("dplyr", "httr")
	declared := depset.New("dplyr", "renv")

	missing := Compare(used, declared)
	assert.Equal(t, []string{"httr"}, missing.Names())
}

func TestCompare_ExactMatchOnly(t *testing.T) {
	missing := Compare(depset.New("Dplyr"), depset.New("dplyr"))
	assert.Equal(t, []string{"Dplyr"}, missing.Names(), "comparison must be case-sensitive")
}

func TestResult_Passed(t *testing.T) {
	assert.True(t, (&Result{Missing: depset.New()}).Passed())
	assert.False(t, (&Result{Missing: depset.New("httr")}).Passed())
}

func TestResult_LockedNeverFailsValidation(t *testing.T) {
	res := &Result{
		Used:     depset.New("dplyr"),
		Declared: depset.New("dplyr"),
		Locked:   depset.New(), // nothing resolved
		Missing:  depset.New(),
	}
	assert.True(t, res.Passed())
}

func TestPhase_CanEnter(t *testing.T) {
	assert.True(t, phaseIdle.canEnter(phaseScanning))
	assert.True(t, phaseComparing.canEnter(phasePruning))
	assert.True(t, phaseComparing.canEnter(phaseReported))
	assert.False(t, phaseScanning.canEnter(phaseScanning))
	assert.False(t, phasePruning.canEnter(phaseComparing), "no backtracking")
	assert.False(t, phaseReported.canEnter(phaseScanning))
}
