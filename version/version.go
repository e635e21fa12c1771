package version

import "github.com/blang/semver/v4"

// Version current komand release version.
var Version = semver.MustParse("0.4.1")
