// SPDX-License-Identifier: MIT
package types

import (
	"fmt"
	"io"
	"strings"
)

// WriteValues writes values to w separated by sep & terminated by a newline.
//
// This is the presentation side of the katas; the algorithms only return values.
func WriteValues[T any](w io.Writer, sep string, values ...T) (err error) {
	var buffer strings.Builder
	for index := range values {
		if index > 0 {
			buffer.WriteString(sep)
		}
		fmt.Fprint(&buffer, values[index])
	}
	buffer.WriteByte('\n')

	_, err = io.WriteString(w, buffer.String())

	return
}
