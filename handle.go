package plume

// BodyHandle is a caller-visible identifier for a body. Unlike a slot index,
// a handle never changes for the lifetime of its body; the indirection table
// maps it to whatever slot the body currently occupies.
type BodyHandle int32

// InvalidBodyHandle fills slot→handle entries past the live prefix.
const InvalidBodyHandle BodyHandle = -1

// HandleMap is the push side of the handle indirection table. The set calls
// SetSlot whenever it moves a body so the table keeps resolving handles to
// the body's current slot.
type HandleMap interface {
	SetSlot(handle BodyHandle, slot int)
}

// SlotMap is an in-memory handle allocator and indirection table. It is the
// default HandleMap for scenes, examples and tests; engines embedding the set
// may substitute their own table.
type SlotMap struct {
	slots []int
	free  []BodyHandle
}

// NewSlotMap creates an empty table.
func NewSlotMap() *SlotMap {
	return &SlotMap{}
}

// Allocate claims a handle and maps it to the given slot, reusing released
// handles before minting new ones.
func (m *SlotMap) Allocate(slot int) BodyHandle {
	if n := len(m.free); n > 0 {
		handle := m.free[n-1]
		m.free = m.free[:n-1]
		m.slots[handle] = slot
		return handle
	}
	m.slots = append(m.slots, slot)
	return BodyHandle(len(m.slots) - 1)
}

// SetSlot points an allocated handle at a new slot.
func (m *SlotMap) SetSlot(handle BodyHandle, slot int) {
	m.slots[handle] = slot
}

// Slot resolves a handle to the slot it currently points at, or -1 if the
// handle has been released.
func (m *SlotMap) Slot(handle BodyHandle) int {
	return m.slots[handle]
}

// Release returns a handle to the allocator for reuse.
func (m *SlotMap) Release(handle BodyHandle) {
	m.slots[handle] = -1
	m.free = append(m.free, handle)
}
