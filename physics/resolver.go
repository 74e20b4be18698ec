package physics

import (
	"container/heap"
	"log"
)

// resolveCandidates drains the queue in time order. Each drained
// candidate is re-checked against the exact shapes before anything is
// resolved; a resolved contact invalidates both trajectories and
// re-predicts them for the remainder of the tick. Re-predicted
// trajectories are not fed back into broad-phase generation within the
// same tick, so only candidates already queued can involve them again.
func (ctx *stepContext) resolveCandidates() {
	for iter := 0; len(ctx.queue) > 0; iter++ {
		if iter >= maxResolveIterations {
			log.Printf(
				"physics: resolution exceeded %d iterations, dropping %d pending candidates this tick",
				maxResolveIterations, len(ctx.queue),
			)
			ctx.queue = ctx.queue[:0]
			return
		}
		c := heap.Pop(&ctx.queue).(candidate)
		ctx.checkCollision(c.pair.A, c.pair.B, c.t)
	}
}

// checkCollision is the narrow phase: the candidate's bodies are tested
// with their true shapes interpolated to the position at time t. A miss
// discards the candidate outright; no later contact is searched for the
// pair in this pass, even though the conservative broad phase may have
// flagged one.
func (ctx *stepContext) checkCollision(a, b *Body, t float64) {
	shapeA := a.Shape().Shape()
	shapeB := b.Shape().Shape()
	if _, ok := ctx.moving[a]; ok && t > 0 {
		shapeA = shapeA.CenterTo(a.PredictPosition(t))
	}
	if _, ok := ctx.moving[b]; ok && t > 0 {
		shapeB = shapeB.CenterTo(b.PredictPosition(t))
	}
	if shapeA.CollidesWith(shapeB) {
		ctx.resolveCollision(a, b, t)
	}
}

func (ctx *stepContext) resolveCollision(a, b *Body, t float64) {
	if a.IsTangible() && b.IsTangible() {
		settle := t
		if t == 0 {
			settle = -contactSettleEpsilon
		}
		a.Update(settle)
		b.Update(settle)
		exchangeVelocities(a, b)

		remaining := ctx.tick - t
		ctx.removeMoving(a)
		ctx.removeMoving(b)
		ctx.predictMovement(a, remaining)
		ctx.predictMovement(b, remaining)
	}

	// Notification is independent of physical resolution: it fires for
	// intangible contacts too.
	a.notifyCollision(b)
	b.notifyCollision(a)
}

// exchangeVelocities applies the mass-weighted velocity exchange. It is
// not a contact-normal impulse: the exchange is directionally correct
// for head-on interactions only. Static bodies keep their velocity.
func exchangeVelocities(a, b *Body) {
	va, vb := a.Velocity(), b.Velocity()
	ma, mb := a.Mass(), b.Mass()

	momentum := va.Mul(ma).Add(vb.Mul(mb))
	inv := 1.0 / (ma + mb)
	v1 := momentum.Add(vb.Sub(va).Mul(mb)).Mul(inv)
	v2 := momentum.Add(va.Sub(vb).Mul(mb)).Mul(inv)

	if !a.IsStatic() {
		a.SetVelocity(v1)
	}
	if !b.IsStatic() {
		b.SetVelocity(v2)
	}
}
