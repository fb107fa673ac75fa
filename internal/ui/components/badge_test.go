package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/triage/internal/ui/theme"
)

func TestSpecialtyColor(t *testing.T) {
	assert.Equal(t, theme.Error, SpecialtyColor("Cardiology"))
	assert.Equal(t, theme.Warning, SpecialtyColor("Dermatology"))
	assert.Equal(t, theme.Primary, SpecialtyColor("General Medicine"))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, theme.Success, StatusColor("ACCEPTED"))
	assert.Equal(t, theme.Error, StatusColor("REJECTED"))
	assert.Equal(t, theme.Warning, StatusColor("PENDING"))
}

func TestBadgeContainsLabel(t *testing.T) {
	assert.Contains(t, Badge("Cardiology", theme.Error), "Cardiology")
	assert.Contains(t, InlineBadge("PENDING", theme.Warning), "[PENDING]")
}
