package miner

// Debouncer allows one event per cooldown window, measured in ticks.
type Debouncer struct {
	cooldown uint64
	last     uint64
	fired    bool
}

// NewDebouncer creates a debouncer with the given cooldown in ticks.
func NewDebouncer(cooldown uint64) *Debouncer {
	return &Debouncer{cooldown: cooldown}
}

// CooldownTicks converts a cooldown in milliseconds to whole ticks, rounding up.
func CooldownTicks(ms, tickRate int) uint64 {
	if ms <= 0 || tickRate <= 0 {
		return 0
	}
	return uint64((ms*tickRate + 999) / 1000)
}

// Try reports whether an event at tick may fire, and records it if so.
func (d *Debouncer) Try(tick uint64) bool {
	if d.fired && tick-d.last < d.cooldown {
		return false
	}
	d.fired = true
	d.last = tick
	return true
}

// Reset forgets the last event.
func (d *Debouncer) Reset() {
	d.fired = false
	d.last = 0
}
