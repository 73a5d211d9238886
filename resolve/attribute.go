package resolve

import swayast "github.com/ourovoros-io/sway-analyzer-go/ast"

// HasAttribute reports whether attrs contains an attribute named `name`
// carrying every argument in wantArgs (order-independent). An empty
// wantArgs matches any occurrence of the bare attribute name.
func HasAttribute(attrs []swayast.AttributeDecl, name string, wantArgs []string) bool {
	for _, a := range attrs {
		if a.Name != name {
			continue
		}
		if len(wantArgs) == 0 {
			return true
		}
		have := make(map[string]bool, len(a.Args))
		for _, arg := range a.Args {
			have[arg.Name] = true
		}
		ok := true
		for _, want := range wantArgs {
			if !have[want] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
