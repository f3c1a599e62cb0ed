package cache

// node is an element of a recency list. It keeps its key so the owner can
// drop the map entry when the node is evicted.
type node[K comparable] struct {
	key        K
	prev, next *node[K]
}

// recency is a doubly-linked list ordered from most recently used (head)
// to least recently used (tail). It is not thread-safe.
type recency[K comparable] struct {
	head, tail *node[K]
	len        int
}

// pushFront adds key as the most recently used node.
func (l *recency[K]) pushFront(key K) *node[K] {
	n := &node[K]{key: key}
	l.link(n)
	return n
}

// touch marks n as the most recently used node.
func (l *recency[K]) touch(n *node[K]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.link(n)
}

// popBack removes the least recently used node.
func (l *recency[K]) popBack() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

func (l *recency[K]) link(n *node[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *recency[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
