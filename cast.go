// ABOUTME: Checked conversions between registered types
// ABOUTME: Resolves upcasts from a cached plan and everything else through the object header

package rtti

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// castPlan is the resolved answer for one (source, target) pair of types
type castPlan struct {
	target TypeID
	static bool // target is the source type or one of its ancestors
	offset int  // adjustment when static
}

type planKey struct {
	from, to typeKey
}

// plans is copied on write so lookups take no lock
var (
	plansMu sync.Mutex
	plans   atomic.Pointer[map[planKey]castPlan]
)

// planFor returns the cached plan for casting a *B to a *D, resolving it from
// the default registry on first use
func planFor[D, B any]() castPlan {
	key := planKey{from: typeKeyOf[B](), to: typeKeyOf[D]()}
	if m := plans.Load(); m != nil {
		if p, ok := (*m)[key]; ok {
			return p
		}
	}

	from := objectInfo[B]()
	to := objectInfo[D]()
	p := castPlan{target: to.id}
	if off, ok := from.data.Find(uint32(to.id)); ok {
		p.static = true
		p.offset = int(off)
	}

	plansMu.Lock()
	defer plansMu.Unlock()
	var next map[planKey]castPlan
	if m := plans.Load(); m != nil {
		next = make(map[planKey]castPlan, len(*m)+1)
		for k, v := range *m {
			next[k] = v
		}
	} else {
		next = make(map[planKey]castPlan)
	}
	next[key] = p
	plans.Store(&next)
	return p
}

// Cast converts a handle to a registered B into a handle to the D subobject
// of the same object. It returns nil when p is nil or the object does not
// contain a D. Both B and D must be registered struct types, not pointers.
//
// When D is B or one of B's ancestors the adjustment depends only on B's
// layout and the object header is not read. Otherwise the header finds the
// most-derived object and its descriptor resolves D. Ancestors reachable
// through several paths resolve through the first one.
func Cast[D, B any](p *B) *D {
	if p == nil {
		return nil
	}
	plan := planFor[D, B]()
	if plan.static {
		return (*D)(unsafe.Add(unsafe.Pointer(p), plan.offset))
	}
	return (*D)(header(p).CastTo(plan.target))
}

// CastObject converts a hooks handle, such as a value held behind the
// Polymorphic interface, into a handle to its D subobject
func CastObject[D any](o Polymorphic) *D {
	if o == nil {
		return nil
	}
	return (*D)(o.CastTo(objectInfo[D]().id))
}

// Is reports whether the object p points into contains a D
func Is[D, B any](p *B) bool {
	return Cast[D](p) != nil
}
