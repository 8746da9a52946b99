package compute

import "github.com/cutgrade/cutgrade/pkg/types"

// Worst returns the worst of grades. With no grades it returns Ideal.
func Worst(grades ...types.Grade) types.Grade {
	worst := types.Ideal
	for _, g := range grades {
		if g.Worse(worst) {
			worst = g
		}
	}
	return worst
}
