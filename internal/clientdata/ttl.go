package clientdata

import "time"

// TTLSnapshot bounds how long a fetched snapshot is served before the
// upstream is consulted again. Statements update quarterly but prices
// move intraday, so the cache stays short-lived.
const TTLSnapshot = 30 * time.Minute
