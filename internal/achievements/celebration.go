package achievements

import (
	"sync"
	"time"

	"github.com/julianstephens/healthtrack/internal/models"
)

// Celebration tracks the unlock banner. Each Begin starts a new generation;
// a dismissal carrying an older generation is ignored, so a timer left over
// from a replaced banner cannot clear the new one.
type Celebration struct {
	duration time.Duration

	mu     sync.Mutex
	gen    uint64
	active []models.Achievement
}

func NewCelebration(d time.Duration) *Celebration {
	return &Celebration{duration: d}
}

func (c *Celebration) Duration() time.Duration {
	return c.duration
}

// Begin shows unlocked and returns the generation that may dismiss it
func (c *Celebration) Begin(unlocked []models.Achievement) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.active = append([]models.Achievement(nil), unlocked...)
	return c.gen
}

// Dismiss clears the banner if gen is still current
func (c *Celebration) Dismiss(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.active == nil {
		return false
	}
	c.active = nil
	return true
}

// Active returns the achievements currently on the banner
func (c *Celebration) Active() []models.Achievement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Achievement(nil), c.active...)
}

// Stop hides the banner. Dismissals still in flight for its generation are
// ignored.
func (c *Celebration) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = nil
}
