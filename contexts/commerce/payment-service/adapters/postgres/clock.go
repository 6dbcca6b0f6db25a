package postgresadapter

import "time"

// SystemClock reads wall-clock time for reconciliation timestamps.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
