package workspace

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"sync/atomic"
)

var idFallback atomic.Uint64

// newID returns prefix-<suffix> where suffix is 8 chars of base32 (lowercase,
// no padding). 8 chars base32 ~= 40 bits of space, plenty for ids that only
// need to be unique within one workspace.
func newID(prefix string) string {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; here a
		// process-local counter keeps ids unique enough to carry on.
		return fmt.Sprintf("%s-%d", prefix, idFallback.Add(1))
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:]))
}
