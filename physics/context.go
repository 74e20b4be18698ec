package physics

import (
	"container/heap"
	"sort"

	"github.com/CaMMelo/gaming-framework/spatial"
	"github.com/go-gl/mathgl/mgl64"
)

// movingRecord tracks one body in motion this tick. A body holds at most
// one record, and each record owns exactly one swept proxy in the
// movement index.
type movingRecord struct {
	body  *Body
	start mgl64.Vec2
	end   mgl64.Vec2
	swept *Body

	// timeLeft is the span the record's prediction covers: the full
	// tick for bodies that were never resolved, the remainder of the
	// tick for bodies re-predicted after a contact. Commit advances
	// each tracked body by exactly this span.
	timeLeft float64
}

// candidate is a possible contact, ordered by time of impact with the
// normalized pair IDs as tie-break so resolution order is reproducible.
type candidate struct {
	t    float64
	pair BodyPair
}

type candidateQueue []candidate

func (q candidateQueue) Len() int { return len(q) }

func (q candidateQueue) Less(i, j int) bool {
	if q[i].t != q[j].t {
		return q[i].t < q[j].t
	}
	ki, kj := q[i].pair.key(), q[j].pair.key()
	if ki.low != kj.low {
		return ki.low < kj.low
	}
	return ki.high < kj.high
}

func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x interface{}) {
	*q = append(*q, x.(candidate))
}

func (q *candidateQueue) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}

// stepContext owns all transient state of a single tick: the moving
// records, the swept-proxy side table, the movement index, and the
// candidate queue. It is created at the start of a tick and discarded at
// the end; nothing in it survives across ticks.
type stepContext struct {
	static   spatial.Structure
	movement spatial.Structure
	moving   map[*Body]*movingRecord
	swept    map[*Body]*Body
	queue    candidateQueue
	tick     float64

	// enqueued dedupes pairs across the whole broad-phase pass, so a
	// pair is queued at most once no matter which body initiated the
	// query that found it.
	enqueued map[pairKey]struct{}
}

func newStepContext(static spatial.Structure, tick float64) *stepContext {
	return &stepContext{
		static:   static,
		movement: static.EmptyCopy(),
		moving:   make(map[*Body]*movingRecord),
		swept:    make(map[*Body]*Body),
		tick:     tick,
		enqueued: make(map[pairKey]struct{}),
	}
}

// predictMovement registers a moving record and swept proxy for the body
// covering the next dt. Static bodies and bodies that would not move are
// skipped.
func (ctx *stepContext) predictMovement(b *Body, dt float64) {
	if b.IsStatic() {
		return
	}
	end := b.PredictPosition(dt)
	if end == b.Position() {
		return
	}
	proxy := makeSweptBody(b, end)
	ctx.moving[b] = &movingRecord{
		body:     b,
		start:    b.Position(),
		end:      end,
		swept:    proxy,
		timeLeft: dt,
	}
	ctx.swept[proxy] = b
	ctx.movement.Insert(proxy)
}

// removeMoving drops the body's record and swept proxy. Removing a body
// with no active record is a no-op.
func (ctx *stepContext) removeMoving(b *Body) {
	rec, ok := ctx.moving[b]
	if !ok {
		return
	}
	delete(ctx.moving, b)
	delete(ctx.swept, rec.swept)
	ctx.movement.Remove(rec.swept)
}

// sortedRecords returns the active records ordered by body ID, keeping
// iteration over the moving set deterministic.
func (ctx *stepContext) sortedRecords() []*movingRecord {
	recs := make([]*movingRecord, 0, len(ctx.moving))
	for _, rec := range ctx.moving {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].body.id < recs[j].body.id
	})
	return recs
}

func (ctx *stepContext) pushCandidate(pair BodyPair) {
	if _, dup := ctx.enqueued[pair.key()]; dup {
		return
	}
	ctx.enqueued[pair.key()] = struct{}{}

	toc := TimeOfImpact(pair.A, pair.B)
	if toc >= 0 && toc <= ctx.tick {
		heap.Push(&ctx.queue, candidate{t: toc, pair: pair})
	}
}

// commit advances every body still holding a moving record by the span
// its record was predicted for. Bodies resolved mid-tick carry the
// remainder of the tick in their re-predicted record; untouched bodies
// carry the full tick.
func (ctx *stepContext) commit() {
	for _, rec := range ctx.sortedRecords() {
		rec.body.Update(rec.timeLeft)
	}
}
