package db

import "log"

// CloseQuietly closes a database client during shutdown, logging instead
// of propagating: at that point there is nobody left to handle the error.
func CloseQuietly(name string, c interface{ Close() error }) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		log.Printf("[WARN] failed to close `%s`: %v", name, err)
	} else {
		log.Printf("[INFO] `%s` closed", name)
	}
}
