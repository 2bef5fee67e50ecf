package plume

// CollectIsland gathers the slots of every body transitively connected to
// seed through constraints: the body's simulation island. The seed is always
// the first element; the order of the rest follows the traversal and carries
// no meaning. Bodies reached through several constraints appear once.
func (s *Set) CollectIsland(seed int, solver Solver) []int {
	s.validateSlot(seed)

	visited := s.pools.Flags.Take(s.Count)
	defer s.pools.Flags.Return(visited)

	island := []int{seed}
	visited[seed] = true

	stack := []int{seed}
	for len(stack) > 0 {
		slot := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.EnumerateConnectedBodies(slot, solver, func(connected int) {
			if visited[connected] {
				return
			}
			visited[connected] = true
			island = append(island, connected)
			stack = append(stack, connected)
		})
	}
	return island
}
