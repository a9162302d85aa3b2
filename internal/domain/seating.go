package domain

// SeatLayout is the desired arrangement supplied with SET_SEAT_LAYOUT.
type SeatLayout struct {
	SeatOrder  []string
	BenchOrder []string
	Kicked     []string
}

// ApplySeatLayout recomputes the seated/benched partition from a desired
// layout. Guarantees:
//   - the host is never kicked or benched
//   - explicit seat order is honored up to capacity, overflow moves to bench
//   - anyone not explicitly placed keeps their prior seat if room remains,
//     otherwise moves to the bench
//   - no duplicate ids across the partition
//   - the seat list is never left empty while participants remain
//
// Reapplying the same layout to its own output yields an identical result.
func ApplySeatLayout(seated, benched []Player, hostID string, capacity int, layout SeatLayout) (nextSeated, nextBenched []Player) {
	if capacity < 1 {
		capacity = 1
	}

	known := make(map[string]Player, len(seated)+len(benched))
	for _, p := range seated {
		known[p.ID] = p
	}
	for _, p := range benched {
		known[p.ID] = p
	}

	kicked := make(map[string]bool, len(layout.Kicked))
	for _, id := range layout.Kicked {
		if id != hostID {
			kicked[id] = true
		}
	}

	placed := make(map[string]bool)
	seat := func(p Player) {
		p.IsSpectator = false
		nextSeated = append(nextSeated, p)
		placed[p.ID] = true
	}
	bench := func(p Player) {
		p.IsSpectator = true
		nextBenched = append(nextBenched, p)
		placed[p.ID] = true
	}

	// Explicit seat order, truncating overflow to the bench.
	for _, id := range layout.SeatOrder {
		p, ok := known[id]
		if !ok || kicked[id] || placed[id] {
			continue
		}
		if id == hostID || len(nextSeated) < capacity {
			seat(p)
		} else {
			bench(p)
		}
	}

	// Explicit bench order. The host cannot be benched; an attempt leaves
	// them unplaced so the retention pass seats them.
	for _, id := range layout.BenchOrder {
		p, ok := known[id]
		if !ok || kicked[id] || placed[id] || id == hostID {
			continue
		}
		bench(p)
	}

	// Unplaced prior-seated players keep their seat while room remains.
	for _, p := range seated {
		if kicked[p.ID] || placed[p.ID] {
			continue
		}
		if p.ID == hostID || len(nextSeated) < capacity {
			seat(p)
		} else {
			bench(p)
		}
	}

	// Unplaced prior-benched players stay benched.
	for _, p := range benched {
		if kicked[p.ID] || placed[p.ID] {
			continue
		}
		if p.ID == hostID && len(nextSeated) == 0 {
			seat(p)
			continue
		}
		bench(p)
	}

	// Never leave the room host-less: force-seat the host, or failing that
	// the first benched participant.
	if hostIdx := indexOf(nextSeated, hostID); hostIdx < 0 {
		if benchIdx := indexOf(nextBenched, hostID); benchIdx >= 0 {
			p := nextBenched[benchIdx]
			nextBenched = append(nextBenched[:benchIdx], nextBenched[benchIdx+1:]...)
			p.IsSpectator = false
			nextSeated = append([]Player{p}, nextSeated...)
		}
	}
	if len(nextSeated) == 0 && len(nextBenched) > 0 {
		p := nextBenched[0]
		nextBenched = nextBenched[1:]
		p.IsSpectator = false
		nextSeated = append(nextSeated, p)
	}

	// Capacity may have been exceeded only to protect the host; shed the
	// overflow from the tail back to the bench front.
	for len(nextSeated) > capacity {
		last := nextSeated[len(nextSeated)-1]
		if last.ID == hostID {
			break
		}
		nextSeated = nextSeated[:len(nextSeated)-1]
		last.IsSpectator = true
		nextBenched = append([]Player{last}, nextBenched...)
	}

	return nextSeated, nextBenched
}

func indexOf(players []Player, id string) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
