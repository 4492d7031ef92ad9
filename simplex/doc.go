// Package simplex drives a tableau.Tableau to optimality one pivot at a time.
//
// 🚀 What is it?
//
//	tableau.Pivot performs an elimination step but never chooses where to pivot.
//	This package adds the selection policy on top: an entering column from the
//	objective row (Bland or Dantzig), a leaving row from the minimum-ratio test,
//	and the optimality and unboundedness checks that end the loop.
//
// ✨ Key features:
//   - Bland's rule (never cycles) and Dantzig's most-improving rule
//   - exact rational ratio test; no tolerances anywhere
//   - Maximize or Minimize reading of the objective row
//   - artificial variables never re-enter the basis
//   - Run honors context cancellation between pivots, never inside one
//   - BeforePivot hook so an owner can snapshot history per automatic pivot
//
// ⚙️ Objective row convention (Maximize, the default):
//
//	z - c·x = 0  is stored as  [-c | 0];  a column improves when its entry < 0,
//	and the RHS of the objective row reads the current value of z.
//
// Usage:
//
//	d := simplex.NewDriver(simplex.WithRule(simplex.Bland))
//	res, err := d.Run(ctx, t)
//	fmt.Println(res.Status, res.Objective, res.Values["x"])
package simplex
