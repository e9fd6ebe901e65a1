package system

// System updates a world each frame.
type System interface {
	Update(w *World)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Step runs every system once with dt, then advances the frame counters.
func (s *Scheduler) Step(w *World, dt float64) {
	w.DT = dt
	for _, system := range s.systems {
		system.Update(w)
	}
	w.Tick++
	w.Elapsed += dt
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
