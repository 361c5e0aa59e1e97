package watson

import (
	"fmt"
	"runtime"
)

// Version is the SDK release version.
const Version = "0.9.0"

// UserAgent returns the default User-Agent header value.
func UserAgent() string {
	return fmt.Sprintf("watson-go-sdk/%s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
