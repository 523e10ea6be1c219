package provider

import (
	"fmt"
	"strings"

	"github.com/Walnut356/syntheticproviders/debuginfo"
)

// summaryMaxContent bounds the accumulated element text in a sequence
// summary. The open/close tokens do not count against it.
const summaryMaxContent = 32

// childLister is the minimal surface the sequence formatter needs: a
// provider, or a raw value adapted through hostChildren.
type childLister interface {
	Count() int
	ChildAtIndex(i int) (debuginfo.Value, error)
}

// sequenceSummary renders child previews between open and close tokens,
// separated by ", ", until the children run out or the accumulated text
// exceeds the budget. Overflow prefixes an element count and replaces the
// remaining elements with an ellipsis. Element previews are atomic; the
// formatter never cuts one mid-way.
func sequenceSummary(open, close string, children childLister) (string, error) {
	length := children.Count()

	var b strings.Builder
	long := false
	for i := 0; i < length; i++ {
		if b.Len() > summaryMaxContent {
			long = true
			break
		}
		c, err := children.ChildAtIndex(i)
		if err != nil {
			return "", err
		}
		b.WriteString(c.Preview())
		b.WriteString(", ")
	}

	if long {
		return fmt.Sprintf("(len: %d) %s%s...%s", length, open, b.String(), close), nil
	}
	return open + strings.TrimSuffix(b.String(), ", ") + close, nil
}
