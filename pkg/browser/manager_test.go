package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchRequiresInitialize(t *testing.T) {
	m := NewManager()

	_, err := m.Launch(LaunchOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestShutdownWithoutInitialize(t *testing.T) {
	m := NewManager()

	// Nothing launched, nothing running: shutdown is a no-op.
	assert.NoError(t, m.Shutdown())
	assert.NoError(t, m.Shutdown())
}
