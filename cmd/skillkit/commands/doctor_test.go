package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillkit-dev/skillkit/internal/doctor"
)

func TestValidateDoctorFlags(t *testing.T) {
	reset := func() {
		doctorJSON = false
		doctorQuiet = false
		doctorVerbose = false
	}

	reset()
	assert.NoError(t, validateDoctorFlags(nil, nil))

	reset()
	doctorJSON = true
	assert.NoError(t, validateDoctorFlags(nil, nil))

	reset()
	doctorJSON = true
	doctorQuiet = true
	assert.Error(t, validateDoctorFlags(nil, nil))

	reset()
	doctorQuiet = true
	doctorVerbose = true
	assert.Error(t, validateDoctorFlags(nil, nil))
	reset()
}

func TestStatusIcon(t *testing.T) {
	// Every severity has a distinct icon.
	severities := []doctor.Severity{
		doctor.SeverityPass, doctor.SeverityInfo,
		doctor.SeverityWarning, doctor.SeverityError,
	}
	icons := map[string]bool{}
	for _, s := range severities {
		icons[statusIcon(s)] = true
	}
	assert.Len(t, icons, 4)
}
