/*
GoTikTokIP
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package error

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/VictoriaMetrics/fastcache"
)

// ErrorContext holds metadata about where/when the error occurred
type ErrorContext struct {
	Username    string `json:"username"`
	Target      string `json:"target"`
	ErrorSource string `json:"error_source"`

	Timestamp time.Time `json:"timestamp"`
}

// ErrorStats tracks statistics for each error type
type ErrorStats struct {
	Count        int64            `json:"count"`
	FirstSeen    time.Time        `json:"first_seen"`
	LastSeen     time.Time        `json:"last_seen"`
	ErrorSources map[string]int64 `json:"error_sources"`
}

// ErrorHandler manages error tracking and caching
type ErrorHandler struct {
	cache         *fastcache.Cache
	statsLock     sync.RWMutex
	stats         map[string]*ErrorStats
	whitelistLock sync.RWMutex
	whitelist     map[string]struct{}
}

var (
	defaultHandler *ErrorHandler
	once           sync.Once
)

// GetErrorHandler returns the singleton error handler
func GetErrorHandler() *ErrorHandler {
	once.Do(func() {
		defaultHandler = NewErrorHandler(8)
	})
	return defaultHandler
}

func NewErrorHandler(cacheSizeMB int) *ErrorHandler {
	return &ErrorHandler{
		cache:     fastcache.New(cacheSizeMB * 1024 * 1024),
		stats:     make(map[string]*ErrorStats),
		whitelist: make(map[string]struct{}),
	}
}

func (e *ErrorHandler) AddWhitelistedErrors(errors ...string) {
	e.whitelistLock.Lock()
	defer e.whitelistLock.Unlock()

	for _, err := range errors {
		e.whitelist[err] = struct{}{}
	}
}

func (e *ErrorHandler) IsWhitelisted(err error) bool {
	e.whitelistLock.RLock()
	defer e.whitelistLock.RUnlock()

	_, ok := e.whitelist[err.Error()]
	return ok
}

func (e *ErrorHandler) HandleError(err error, ctx ErrorContext) {
	if err == nil || e.IsWhitelisted(err) {
		return
	}

	errKey := err.Error()
	ctx.Timestamp = time.Now()

	// Update stats
	e.statsLock.Lock()
	if _, exists := e.stats[errKey]; !exists {
		e.stats[errKey] = &ErrorStats{
			FirstSeen:    ctx.Timestamp,
			ErrorSources: make(map[string]int64),
		}
	}

	stat := e.stats[errKey]
	stat.Count++
	stat.LastSeen = ctx.Timestamp
	stat.ErrorSources[ctx.ErrorSource]++
	e.statsLock.Unlock()

	if ctx.Username != "" {
		e.incrementErrorCount([]byte(ctx.Username))
	}
}

func (e *ErrorHandler) incrementErrorCount(userKey []byte) uint32 {
	var count uint32

	if data := e.cache.Get(nil, userKey); len(data) == 4 {
		count = binary.LittleEndian.Uint32(data)
	}
	count++

	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, count)
	e.cache.Set(userKey, buf)

	return count
}

// HasErrors reports whether any lookup for the username has failed
func (e *ErrorHandler) HasErrors(username string) bool {
	return e.GetErrorCount(username) > 0
}

// GetErrorCount returns the number of failed lookups for the username
func (e *ErrorHandler) GetErrorCount(username string) uint32 {
	data := e.cache.Get(nil, []byte(username))
	if len(data) != 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(data)
}

func (e *ErrorHandler) PrintErrorStats() {
	e.statsLock.RLock()
	defer e.statsLock.RUnlock()

	if len(e.stats) == 0 {
		return
	}

	fmt.Println("\n=== Error Statistics ===")
	for errKey, stat := range e.stats {
		fmt.Printf("\nError: %s\n", errKey)
		fmt.Printf("Count: %d occurrences\n", stat.Count)
		fmt.Printf("First Seen: %s\n", stat.FirstSeen.Format(time.RFC3339))
		fmt.Printf("Last Seen: %s\n", stat.LastSeen.Format(time.RFC3339))

		fmt.Println("Error Sources:")
		for source, count := range stat.ErrorSources {
			fmt.Printf("  - %s: %d times\n", source, count)
		}
	}
}

func (e *ErrorHandler) Reset() {
	e.statsLock.Lock()
	e.stats = make(map[string]*ErrorStats)
	e.statsLock.Unlock()
	e.cache.Reset()
}
