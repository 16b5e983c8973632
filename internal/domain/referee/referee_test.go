package referee

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_DisplayTitle(t *testing.T) {
	attached := &Referee{
		Name:       "Jordan",
		Role:       "CTO",
		Attachment: AttachToWork(uuid.New()),
		Employer:   "Acme",
	}
	assert.Equal(t, "CTO at Acme", attached.DisplayTitle())

	detached := &Referee{
		Name:       "Jordan",
		Role:       "CTO",
		Attachment: Detached(),
	}
	assert.Equal(t, "CTO", detached.DisplayTitle())

	// Attachment present but the parent row is gone: still just the role.
	orphaned := &Referee{
		Name:       "Jordan",
		Role:       "CTO",
		Attachment: AttachToEducation(uuid.New()),
		Employer:   "",
	}
	assert.Equal(t, "CTO", orphaned.DisplayTitle())
}
