package workspace

import (
	"fmt"
	"strconv"
	"strings"
)

// tokenPrefix is the leading field of the in-process drag token.
const tokenPrefix = "tab"

// Token describes a tab being dragged: its source pane id and tab index.
// Tokens are only valid within the running session — pane ids are never
// persisted or shared across process boundaries.
type Token struct {
	TabIndex int
	PaneID   int
}

// String encodes the token in its wire format: "tab:<sourceIndex>:<sourcePaneId>".
func (t Token) String() string {
	return fmt.Sprintf("%s:%d:%d", tokenPrefix, t.TabIndex, t.PaneID)
}

// ParseToken decodes a drag token. Malformed tokens yield ok=false and are
// ignored by the transfer protocol — they never cause a mutation or an error.
func ParseToken(s string) (Token, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] != tokenPrefix {
		return Token{}, false
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return Token{}, false
	}
	paneID, err := strconv.Atoi(parts[2])
	if err != nil || paneID < 0 {
		return Token{}, false
	}
	return Token{TabIndex: index, PaneID: paneID}, true
}
