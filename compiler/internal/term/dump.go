package term

import "github.com/davecgh/go-spew/spew"

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// sdump renders v as a multi-line structural dump.
func sdump(v any) string { return dumper.Sdump(v) }

// Dump writes a labelled structural dump of v to Stderr when Verbose is set.
func Dump(label string, v any) {
	if !Verbose {
		return
	}
	Eprintf("[debug] %s:\n%s", label, sdump(v))
}
