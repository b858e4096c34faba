package system

import "log"

func loggerOrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}

// clipWarner logs a missing clip once per actor kind and clip name.
type clipWarner struct {
	seen map[string]bool
}

func (c *clipWarner) missing(l *log.Logger, actor, clip string) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	key := actor + "/" + clip
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	loggerOrDefault(l).Printf("%s: animation %q not found, falling back to Idle", actor, clip)
}
