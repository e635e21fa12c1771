package version

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	// a bumped version string must stay parseable
	parsed, err := semver.Parse(Version.String())
	assert.NoError(t, err)
	assert.Equal(t, Version, parsed)
}
