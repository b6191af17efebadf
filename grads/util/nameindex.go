package util

// NameIndex maps names to the positions at which they were added, keeping
// first-seen order. Unlike a plain map it tolerates duplicate names: each
// Add of an existing name appends another position.
type NameIndex struct {
	keys      []string
	positions map[string][]int
	next      int
}

func NewNameIndex() *NameIndex {
	return &NameIndex{positions: map[string][]int{}}
}

// Add records name at the next position and returns that position.
func (ni *NameIndex) Add(name string) int {
	pos := ni.next
	ni.next++
	if _, has := ni.positions[name]; !has {
		ni.keys = append(ni.keys, name)
	}
	ni.positions[name] = append(ni.positions[name], pos)
	return pos
}

// Get returns every position recorded for name, in order.
func (ni *NameIndex) Get(name string) (positions []int, has bool) {
	positions, has = ni.positions[name]
	return
}

// First returns the first position recorded for name.
func (ni *NameIndex) First(name string) (int, bool) {
	p, has := ni.positions[name]
	if !has {
		return -1, false
	}
	return p[0], true
}

// Keys returns the unique names in first-seen order.
func (ni *NameIndex) Keys() []string {
	return ni.keys
}

// Len is the number of positions handed out, duplicates included.
func (ni *NameIndex) Len() int {
	return ni.next
}
