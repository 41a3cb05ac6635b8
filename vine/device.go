package vine

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

var (
	deviceTokenOnce sync.Once
	deviceToken     string
)

// DeviceToken returns the device identity sent with every authentication
// request: 32 random bytes as lowercase hex. It is generated once per
// process on first use and reused for the process lifetime; it is not a
// per-request nonce.
func DeviceToken() string {
	deviceTokenOnce.Do(func() {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			panic("vine: failed to read random bytes: " + err.Error())
		}
		deviceToken = hex.EncodeToString(buf)
	})
	return deviceToken
}
