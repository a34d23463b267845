package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoMatchesGetters(t *testing.T) {
	v, c, d := Info()

	assert.NotEmpty(t, v)
	assert.Equal(t, GetVersion(), v)
	assert.Equal(t, GetCommit(), c)
	assert.Equal(t, GetDate(), d)
}

func TestString(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	version = "v1.4.0"
	assert.Equal(t, "ministore version=v1.4.0 commit="+commit+" date="+date, String())
}
