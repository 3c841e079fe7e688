package dom

import (
	"os"
	"runtime"
)

// PlatformClasses returns the ordered class names describing the current
// platform, suitable for tagging a document root (e.g. "linux", "wayland").
func PlatformClasses() []string {
	classes := []string{runtime.GOOS}
	switch os.Getenv("XDG_SESSION_TYPE") {
	case "wayland":
		classes = append(classes, "wayland")
	case "x11":
		classes = append(classes, "x11")
	}
	return classes
}

// ApplyPlatformClasses adds the given platform classes to the document root.
// When classes is empty, the detected platform classes are used.
func (d *Document) ApplyPlatformClasses(classes ...string) {
	if len(classes) == 0 {
		classes = PlatformClasses()
	}
	d.AddClasses("html", classes...)
}
