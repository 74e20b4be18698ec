package physics

// Broad-phase candidate generation. Each moving body queries both the
// movement index (other bodies in motion) and the static index
// (stationary bodies) with its swept proxy; every surviving pair gets a
// time of impact and, if it falls inside the tick, a queue entry.

func (ctx *stepContext) collectCandidates(b *Body) {
	if _, ok := ctx.moving[b]; !ok {
		return
	}
	ctx.queryMovingBodies(b)
	ctx.queryStaticBodies(b)
}

func (ctx *stepContext) queryMovingBodies(b *Body) {
	rec := ctx.moving[b]
	probe := rec.swept.Shape().Shape()
	for _, obj := range ctx.movement.Query(probe) {
		proxy, ok := obj.(*Body)
		if !ok || proxy == rec.swept {
			continue
		}
		other := ctx.swept[proxy]
		if other == nil || other == b {
			continue
		}
		ctx.pushCandidate(MakeBodyPair(b, other))
	}
}

func (ctx *stepContext) queryStaticBodies(b *Body) {
	rec := ctx.moving[b]
	probe := rec.swept.Shape().Shape()
	for _, obj := range ctx.static.Query(probe) {
		other, ok := obj.(*Body)
		if !ok {
			continue
		}
		// Moving bodies found here are already covered by the
		// moving-vs-moving query; skipping them keeps the pair from
		// being derived twice. This also skips b itself.
		if _, isMoving := ctx.moving[other]; isMoving {
			continue
		}
		ctx.pushCandidate(MakeBodyPair(b, other))
	}
}
