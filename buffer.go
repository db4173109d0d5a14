package etharp

//go:generate mockgen -destination ./internal/mocks/mock_buffer.go -package mocks github.com/nilroute/etharp Buffer

// Buffer is the packet-buffer facade this resolver depends on but does not
// own (spec §2.1 / §6). It models the four operations the resolver needs:
// growing head-room to prepend an Ethernet header, materializing a possibly
// borrowed payload into owned storage before queueing it, chaining extra
// buffers onto a queued entry's tail, and releasing.
//
// A concrete Buffer is expected to come from the surrounding stack's
// allocator; chainedBuffer below is a minimal, dependency-free
// implementation suitable for tests and for cmd/etharpd, where a packet is
// simply an owned byte slice.
type Buffer interface {
	// Payload returns the buffer's current bytes. Callers may write into the
	// returned slice up to its length; GrowHead changes what that length
	// covers.
	Payload() []byte

	// GrowHead reserves n bytes at the front of the buffer for a header,
	// shifting the existing payload back. chainedBuffer reallocates when its
	// head-room is too small, and fails only for a negative n or a released
	// buffer.
	GrowHead(n int) error

	// Take returns a buffer with the same payload copied into owned
	// storage. The caller remains responsible for releasing the receiver;
	// the returned buffer is independently owned.
	Take() (Buffer, error)

	// TailEnqueue chains next onto the end of the receiver's queue. Query
	// uses it to append a further buffer to a pending entry that already
	// holds one; the chain length is not bounded.
	TailEnqueue(next Buffer)

	// TailDequeue detaches and returns the first buffer chained after the
	// receiver, or (nil, false) if none is chained.
	TailDequeue() (Buffer, bool)

	// Release returns the buffer (and any chain reachable from it) to its
	// allocator. Released buffers must not be used again.
	Release()
}

// chainedBuffer is a minimal owned-byte-slice Buffer with head-room support
// and a singly linked tail chain, used by tests and by cmd/etharpd.
type chainedBuffer struct {
	buf   []byte
	head  int // bytes of unused head-room at buf[:head]
	tail  *chainedBuffer
	freed bool
}

// NewBuffer wraps payload as an owned Buffer with no head-room. Use
// NewBufferWithHeadroom when the caller knows it will need to prepend a
// header later.
func NewBuffer(payload []byte) Buffer {
	b := make([]byte, len(payload))
	copy(b, payload)
	return &chainedBuffer{buf: b}
}

// NewBufferWithHeadroom allocates a buffer sized for headroom+payload bytes,
// modeling the buffer facade's alloc(layer, size, kind) primitive for the
// link layer: size is the space needed for an Ethernet header plus payload.
func NewBufferWithHeadroom(headroom int, payload []byte) Buffer {
	b := make([]byte, headroom+len(payload))
	copy(b[headroom:], payload)
	return &chainedBuffer{buf: b, head: headroom}
}

func (b *chainedBuffer) Payload() []byte {
	if b.freed {
		return nil
	}
	return b.buf[b.head:]
}

func (b *chainedBuffer) GrowHead(n int) error {
	if b.freed || n < 0 {
		return ErrBufferError
	}
	if n <= b.head {
		b.head -= n
		return nil
	}

	// Not enough reserved head-room: reallocate with the extra space
	// prepended, as a real allocator would round up to satisfy the grow.
	extra := n - b.head
	grown := make([]byte, extra+len(b.buf))
	copy(grown[extra:], b.buf)
	b.buf = grown
	b.head = 0
	return nil
}

func (b *chainedBuffer) Take() (Buffer, error) {
	if b.freed {
		return nil, ErrBufferError
	}
	cp := make([]byte, len(b.buf)-b.head)
	copy(cp, b.buf[b.head:])
	return &chainedBuffer{buf: cp}, nil
}

func (b *chainedBuffer) TailEnqueue(next Buffer) {
	nb, ok := next.(*chainedBuffer)
	if !ok || nb == nil {
		return
	}
	cur := b
	for cur.tail != nil {
		cur = cur.tail
	}
	cur.tail = nb
}

func (b *chainedBuffer) TailDequeue() (Buffer, bool) {
	if b.tail == nil {
		return nil, false
	}
	next := b.tail
	b.tail = nil
	return next, true
}

func (b *chainedBuffer) Release() {
	cur := b
	for cur != nil {
		cur.freed = true
		cur.buf = nil
		cur = cur.tail
	}
}
