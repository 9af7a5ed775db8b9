// SPDX-License-Identifier: EPL-2.0

package record

import "strings"

// DS2089 is the Danish 7-bit character set the tape's host used.
// The punctuation slots carry the accented letters.
var ds2089 = strings.NewReplacer(
	"[", "Æ",
	"\\", "Ø",
	"]", "Å",
	"{", "æ",
	"|", "ø",
	"}", "å",
)

// DS2089 remaps header-derived text for display.
func DS2089(text string) string {
	return ds2089.Replace(text)
}
