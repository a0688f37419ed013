package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod", "", "unknown"} {
		assert.NotNil(t, New(env), "env %q", env)
	}
}
