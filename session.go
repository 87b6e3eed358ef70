package jsonx

import "sync"

const maxPooledBuffer = 64 * 1024

var sessionPool = sync.Pool{New: func() interface{} { return &encoder{buf: make([]byte, 0, 256)} }}

func borrowEncoder(options *Options) *encoder {
	e := sessionPool.Get().(*encoder)
	e.buf = e.buf[:0]
	e.options = options
	e.depth = 0
	return e
}

func (e *encoder) release() {
	if e == nil || cap(e.buf) > maxPooledBuffer {
		return
	}
	e.options = nil
	sessionPool.Put(e)
}

type pathState struct {
	segments []PathSegment
}

func (p *pathState) pushField(name string) {
	p.segments = append(p.segments, PathSegment{Kind: SegmentField, Field: name})
}

func (p *pathState) pushIndex(index int) {
	p.segments = append(p.segments, PathSegment{Kind: SegmentIndex, Index: index})
}

func (p *pathState) pop() {
	if len(p.segments) == 0 {
		return
	}
	p.segments = p.segments[:len(p.segments)-1]
}

func (p *pathState) ref() PathRef {
	cp := make([]PathSegment, len(p.segments))
	copy(cp, p.segments)
	return PathRef{segments: cp, depth: len(cp)}
}
