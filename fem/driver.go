// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Status reports the outcome of one step or one analysis stage
type Status int

const (
	Idle           Status = iota // nothing run yet
	IterateStep                  // still iterating
	Converged                    // step converged
	Diverged                     // residual kept growing
	AnalysisFailed               // singular system or material failure
)

// String returns a human readable status
func (o Status) String() string {
	switch o {
	case Idle:
		return "idle"
	case IterateStep:
		return "iterating"
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	case AnalysisFailed:
		return "analysis failed"
	}
	return io.Sf("unknown status (%d)", int(o))
}

// StepReport summarises one committed (or failed) step
type StepReport struct {
	Step       int     // step counter within the stage
	Iterations int     // iterations spent
	Norm       float64 // last iterative displacement norm
	Status     Status
}

// Solver drives the nonlinear solution with full Newton iterations.
// Failed steps are rolled back to the last committed configuration.
type Solver struct {
	Dom *Domain

	// rollback data
	ybkp   []float64
	lambkp float64

	// scratch
	δur []float64 // iterative displacements from the residual
	δuf []float64 // iterative displacements from the reference pattern
}

// NewSolver allocates a solver for a domain
func NewSolver(dom *Domain) *Solver {
	return &Solver{
		Dom:  dom,
		ybkp: make([]float64, dom.Ny),
		δur:  make([]float64, dom.Ny),
		δuf:  make([]float64, dom.Ny),
	}
}

// dispCtl holds the displacement-control constraint of one step
type dispCtl struct {
	eq  int     // controlled equation
	inc float64 // displacement increment of this step
}

// iterate runs full Newton iterations for one step. With ctl != nil the
// load multiplier becomes an unknown constrained by the controlled
// displacement increment. A step converges when the residual drops below
// FbTol relative to its value at the start of the step, or when the
// iterative displacement norm drops below Itol. The largest residual entry
// must not keep growing; a singular tangent aborts the stage.
func (o *Solver) iterate(ctl *dispCtl) (it int, norm float64, status Status) {

	d := o.Dom
	sv := &d.Model.Solver
	largFbPrev := 0.0
	largFb0 := 0.0
	ndvg := 0

	for it = 0; it < sv.NmaxIt; it++ {

		// residual
		err := d.assembleRhs()
		if err != nil {
			io.Pfred("%v\n", err)
			return it, norm, AnalysisFailed
		}
		largFb := 0.0
		for _, v := range d.Fb {
			if math.Abs(v) > largFb {
				largFb = math.Abs(v)
			}
		}
		if sv.ShowR {
			io.Pf("    it=%2d  largFb=%13.6e  norm=%13.6e\n", it, largFb, norm)
		}
		if largFb < sv.FbMin && !(ctl != nil && it == 0) {
			return it, norm, Converged
		}
		if it == 0 {
			// reference for the relative check. Under displacement control
			// the step starts balanced and Itol governs instead
			largFb0 = largFb
		} else if largFb < sv.FbTol*largFb0 {
			return it, norm, Converged
		}
		if sv.DvgCtrl && it > 1 {
			if largFb > largFbPrev {
				ndvg++
				if ndvg > sv.NdvgMax {
					return it, norm, Diverged
				}
			} else {
				ndvg = 0
			}
		}
		largFbPrev = largFb

		// tangent system
		err = d.assembleKb(it == 0)
		if err != nil {
			io.Pfred("%v\n", err)
			return it, norm, AnalysisFailed
		}
		err = d.factorize()
		if err != nil {
			return it, norm, AnalysisFailed
		}
		err = d.solve(o.δur, d.Fb)
		if err != nil {
			return it, norm, AnalysisFailed
		}

		// displacement control: the multiplier correction enforces the
		// controlled displacement increment on the first iteration and
		// holds it afterwards
		if ctl != nil {
			err = d.solve(o.δuf, d.Fref)
			if err != nil {
				return it, norm, AnalysisFailed
			}
			if math.Abs(o.δuf[ctl.eq]) < 1e-20 {
				return it, norm, AnalysisFailed
			}
			var δλ float64
			if it == 0 {
				δλ = (ctl.inc - o.δur[ctl.eq]) / o.δuf[ctl.eq]
			} else {
				δλ = -o.δur[ctl.eq] / o.δuf[ctl.eq]
			}
			for i := range o.δur {
				o.δur[i] += δλ * o.δuf[i]
			}
			d.Sol.Lam += δλ
		}

		// update primary unknowns
		for i, v := range o.δur {
			d.Sol.Y[i] += v
		}

		// update internal variables from the committed configuration
		for _, e := range d.Elems {
			err = e.RestoreIvs()
			if err != nil {
				return it, norm, AnalysisFailed
			}
		}
		for _, e := range d.Elems {
			err = e.Update(d.Sol)
			if err != nil {
				return it, norm, AnalysisFailed
			}
		}

		// convergence on the iterative displacement norm
		norm = 0
		for _, v := range o.δur {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if it > 0 && norm < sv.Itol {
			return it, norm, Converged
		}
	}
	return it, norm, Diverged
}

// run performs one step with commit on success and rollback on failure
func (o *Solver) run(ctl *dispCtl, step int) (rep StepReport) {
	d := o.Dom
	o.lambkp = d.backup(o.ybkp)
	it, norm, status := o.iterate(ctl)
	rep = StepReport{Step: step, Iterations: it + 1, Norm: norm, Status: status}
	if status != Converged {
		io.Pforan("step %d: %v after %d iterations. norm=%g\n", step, status, it+1, norm)
	}
	if status == Converged {
		err := d.commit()
		if err != nil {
			rep.Status = AnalysisFailed
		}
		return
	}
	d.restore(o.ybkp, o.lambkp)
	return
}

// LoadControl applies nsteps equal increments Δλ of the reference load
// pattern. The optional report callback sees every committed step.
func (o *Solver) LoadControl(Δλ float64, nsteps int, report func(StepReport)) Status {
	for step := 1; step <= nsteps; step++ {
		o.Dom.Sol.Lam += Δλ
		rep := o.run(nil, step)
		if rep.Status != Converged {
			o.Dom.Sol.Lam -= Δλ
			return rep.Status
		}
		if report != nil {
			report(rep)
		}
	}
	return Converged
}

// DispControl drives the displacement of one vertex dof with nsteps equal
// increments, adjusting the multiplier of the reference load pattern. The
// optional report callback sees every committed step.
func (o *Solver) DispControl(vid int, key string, inc float64, nsteps int, report func(StepReport)) Status {
	eq, err := o.Dom.Eq(vid, key)
	if err != nil {
		io.Pfred("%v\n", err)
		return AnalysisFailed
	}
	ctl := &dispCtl{eq: eq, inc: inc}
	for step := 1; step <= nsteps; step++ {
		rep := o.run(ctl, step)
		if rep.Status != Converged {
			return rep.Status
		}
		if report != nil {
			report(rep)
		}
	}
	return Converged
}

// DispHistory drives the controlled displacement through a sequence of
// target values (a cyclic protocol), splitting each excursion into
// increments no larger than maxInc
func (o *Solver) DispHistory(vid int, key string, targets []float64, maxInc float64, report func(StepReport)) Status {
	eq, err := o.Dom.Eq(vid, key)
	if err != nil {
		io.Pfred("%v\n", err)
		return AnalysisFailed
	}
	if maxInc <= 0 {
		io.Pfred("maxInc must be positive\n")
		return AnalysisFailed
	}
	step := 0
	for _, tgt := range targets {
		for {
			cur := o.Dom.Sol.Y[eq]
			rem := tgt - cur
			if math.Abs(rem) < 1e-15 {
				break
			}
			inc := rem
			if math.Abs(inc) > maxInc {
				inc = math.Copysign(maxInc, rem)
			}
			step++
			rep := o.run(&dispCtl{eq: eq, inc: inc}, step)
			if rep.Status != Converged {
				return rep.Status
			}
			if report != nil {
				report(rep)
			}
		}
	}
	return Converged
}
