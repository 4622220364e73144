// SPDX-License-Identifier: MIT
package lexer

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding token, value & item type of scanned rune
	Item struct {
		Err error
		Val []byte // The value of this Item
		ID  ItemID // The type of this Item
		Pos int    // The starting position, (in runes) of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_         = iota // Consume 0 to start actual numbering at 1.
	ItemError        // Notify occurrence of an `error`.
	ItemEOF          // End of the file
	ItemOpen         // '('.
	ItemValue        // Node data, a JSON scalar.
	ItemClose        // ')'.
)

var itemNames = map[ItemID]string{
	ItemError: "error",
	ItemEOF:   "EOF",
	ItemOpen:  "open",
	ItemValue: "value",
	ItemClose: "close",
}

// String renders the ItemID for messages.
func (i ItemID) String() string {
	if name, ok := itemNames[i]; ok {
		return name
	}

	return "unknown"
}
